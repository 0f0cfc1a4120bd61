package equipment

import (
	"testing"

	performance "Recip/internal/calc/performance"
	repo "Recip/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformanceInput(t *testing.T) {
	frame := repo.FrameRecord{
		Model:  "HDS-3",
		Stages: 2,
		Throws: []repo.ThrowRecord{
			{Number: 1, StageNumber: 1, VVCPPct: 10, SACEPct: 80, SAHEPct: 60, BoreMM: 500},
			{Number: 2, StageNumber: 1, VVCPPct: 30, SACEPct: 40, SAHEPct: 20},
			{Number: 3, StageNumber: 2, VVCPPct: 0, SACEPct: 90, SAHEPct: 90},
		},
	}
	process := performance.ProcessInput{
		MassFlowKgS:       8,
		SuctionPressurePa: 2_000_000,
		SuctionTempK:      300,
		Stages:            2,
		PressureRatio:     6,
	}

	in := PerformanceInput(frame, process)
	require.Len(t, in.Throws, 3)
	assert.Equal(t, []string{"throw-1", "throw-2"}, in.Assignment[1])
	assert.Equal(t, []string{"throw-3"}, in.Assignment[2])
	assert.Equal(t, 500.0, in.Throws[0].BoreMM)

	rep := performance.Calculate(in)
	require.Len(t, rep.StageResults, 2)
	// stage 1 averages throws 1 and 2: SACE 60, VVCP 20, SAHE 40
	want1 := 0.65 + 0.15*0.60 - 0.05*0.20 + 0.10*0.40
	assert.InDelta(t, want1, rep.StageResults[0].IsentropicEff, 1e-12)
	// stage 2 uses throw 3 alone: raw 0.65+0.135+0.09 = 0.875
	assert.InDelta(t, 0.875, rep.StageResults[1].IsentropicEff, 1e-12)
}

func TestPerformanceInput_UnassignedThrow(t *testing.T) {
	frame := repo.FrameRecord{
		Stages: 1,
		Throws: []repo.ThrowRecord{{Number: 1, StageNumber: 0, SACEPct: 100}},
	}
	process := performance.ProcessInput{
		MassFlowKgS:       1,
		SuctionPressurePa: 100_000,
		SuctionTempK:      290,
		Stages:            1,
		PressureRatio:     3,
	}
	in := PerformanceInput(frame, process)
	assert.Empty(t, in.Assignment)

	rep := performance.Calculate(in)
	// nothing assigned to stage 1: efficiency floors
	assert.Equal(t, performance.EtaMin, rep.StageResults[0].IsentropicEff)
}
