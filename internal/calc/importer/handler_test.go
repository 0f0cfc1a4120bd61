package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCaseRow(t *testing.T) {
	in, err := ParseCaseRow([]string{"12", "60", "25", "2.5", "3"})
	require.NoError(t, err)
	assert.InDelta(t, 12, in.Process.MassFlowKgS, 1e-12)
	assert.InDelta(t, 6_000_000, in.Process.SuctionPressurePa, 1e-6)
	assert.InDelta(t, 298.15, in.Process.SuctionTempK, 1e-9)
	assert.Equal(t, 3, in.Process.Stages)
	assert.Empty(t, in.Throws)
}

func TestParseCaseRow_WithThrow(t *testing.T) {
	in, err := ParseCaseRow([]string{"12", "60", "25", "2.5", "3", "90", "80", "60"})
	require.NoError(t, err)
	require.Len(t, in.Throws, 1)
	assert.InDelta(t, 90, in.Throws[0].VVCPPct, 1e-12)
	assert.InDelta(t, 80, in.Throws[0].SACEPct, 1e-12)
	assert.InDelta(t, 60, in.Throws[0].SAHEPct, 1e-12)
	require.Len(t, in.Assignment, 3)
	assert.Equal(t, []string{"row"}, in.Assignment[2])
}

func TestParseCaseRow_Bad(t *testing.T) {
	_, err := ParseCaseRow([]string{"12", "60"})
	require.Error(t, err)
	_, err = ParseCaseRow([]string{"x", "60", "25", "2.5", "3"})
	require.Error(t, err)
	_, err = ParseCaseRow([]string{"12", "60", "25", "2.5", "three"})
	require.Error(t, err)
}
