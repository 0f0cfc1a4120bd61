package performance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// expectStage mirrors one loop iteration of the model so the tests do not
// depend on hand-rounded constants.
func expectStage(stageRatio, tIn, eta, massFlow float64) (tOut, powerKW float64) {
	tIsent := tIn * math.Pow(stageRatio, (Gamma-1.0)/Gamma)
	tOut = tIn + (tIsent-tIn)/math.Max(eta, 1e-6)
	powerKW = massFlow * CpKJKgK * (tOut - tIn) / 1000.0
	return
}

func baseProcess() ProcessInput {
	return ProcessInput{
		MassFlowKgS:       12,
		SuctionPressurePa: 6_000_000,
		SuctionTempK:      298.15,
		Stages:            3,
		PressureRatio:     2.5,
	}
}

func TestCalculate_NoThrowsAssigned(t *testing.T) {
	rep := Calculate(Input{Process: baseProcess()})

	require.Len(t, rep.StageResults, 3)
	stageRatio := math.Pow(2.5, 1.0/3.0)

	tIn := 298.15
	total := 0.0
	for i, st := range rep.StageResults {
		require.Equal(t, i+1, st.Stage)
		// no throws assigned: efficiency floors at the minimum
		assert.Equal(t, EtaMin, st.IsentropicEff)
		assert.InDelta(t, stageRatio, st.PressureRatio, 1e-12)

		wantTOut, wantPower := expectStage(stageRatio, tIn, EtaMin, 12)
		assert.InDelta(t, wantTOut, st.DischargeTempK, 1e-9)
		assert.InDelta(t, wantPower, st.ShaftPowerKW, 1e-9)

		tIn = wantTOut
		total += wantPower
	}
	assert.InDelta(t, total, rep.TotalPowerKW, 1e-9)

	// first stage suction equals process suction, 60 bar
	assert.InDelta(t, 6_000_000, rep.StageResults[0].SuctionPressurePa, 1e-6)
	assert.InDelta(t, 6_000_000*stageRatio, rep.StageResults[0].DischargePressurePa, 1e-6)
}

func TestCalculate_PressuresTelescope(t *testing.T) {
	rep := Calculate(Input{Process: baseProcess()})

	for i, st := range rep.StageResults {
		ratio := st.DischargePressurePa / st.SuctionPressurePa
		assert.InDelta(t, rep.PressureRatio, math.Pow(ratio, float64(len(rep.StageResults))), 1e-9, "stage %d", i+1)
		if i > 0 {
			prev := rep.StageResults[i-1]
			assert.InDelta(t, prev.DischargePressurePa, st.SuctionPressurePa, 1e-6)
		}
	}
	last := rep.StageResults[len(rep.StageResults)-1]
	assert.InDelta(t, rep.SuctionPressurePa*rep.PressureRatio, last.DischargePressurePa, 1e-3)
}

func TestCalculate_TemperatureChains(t *testing.T) {
	in := Input{
		Process: baseProcess(),
		Throws:  []Throw{{ID: "T1", SACEPct: 50, SAHEPct: 50, VVCPPct: 20}},
		Assignment: map[int][]string{
			1: {"T1"}, 2: {"T1"}, 3: {"T1"},
		},
	}
	rep := Calculate(in)
	for i := 1; i < len(rep.StageResults); i++ {
		// no intermediate cooling: outlet of stage k is exactly inlet of k+1
		assert.Equal(t, rep.StageResults[i-1].DischargeTempK, rep.StageResults[i].SuctionTempK)
	}
	assert.Equal(t, rep.SuctionTempK, rep.StageResults[0].SuctionTempK)
}

func TestCalculate_SingleThrowEfficiency(t *testing.T) {
	in := Input{
		Process: baseProcess(),
		Throws:  []Throw{{ID: "A", SACEPct: 80, VVCPPct: 90, SAHEPct: 60}},
		Assignment: map[int][]string{
			1: {"A"}, 2: {"A"}, 3: {"A"},
		},
	}
	rep := Calculate(in)
	for _, st := range rep.StageResults {
		// 0.65 + 0.15*0.8 - 0.05*0.9 + 0.10*0.6 = 0.785, inside the bounds
		assert.InDelta(t, 0.785, st.IsentropicEff, 1e-12)
	}
}

func TestCalculate_MultiThrowAveraging(t *testing.T) {
	proc := baseProcess()
	proc.Stages = 1
	in := Input{
		Process: proc,
		Throws: []Throw{
			{ID: "A", SACEPct: 80, VVCPPct: 90, SAHEPct: 60},
			{ID: "B", SACEPct: 40, VVCPPct: 10, SAHEPct: 20},
		},
		Assignment: map[int][]string{1: {"A", "B"}},
	}
	rep := Calculate(in)
	require.Len(t, rep.StageResults, 1)
	// averaged percentages: SACE 60, VVCP 50, SAHE 40
	want := 0.65 + 0.15*0.60 - 0.05*0.50 + 0.10*0.40
	assert.InDelta(t, want, rep.StageResults[0].IsentropicEff, 1e-12)
}

func TestIsentropicEff_Clamps(t *testing.T) {
	// raw 0.65+0.15+0.10 = 0.90: inside the ceiling, untouched
	assert.InDelta(t, 0.90, isentropicEff(0, 100, 100), 1e-12)
	// out-of-range percentages push the raw value past 0.92: capped
	assert.Equal(t, EtaMax, isentropicEff(0, 150, 100))
	assert.Equal(t, EtaMax, isentropicEff(-100, 100, 100))
	// negative proxies drag the raw value under 0.65: floored
	assert.Equal(t, EtaMin, isentropicEff(200, 0, 0))
	assert.Equal(t, EtaMin, isentropicEff(0, -50, -50))
}

func TestCalculate_StageCountClampsToOne(t *testing.T) {
	for _, stages := range []int{0, -3} {
		proc := baseProcess()
		proc.Stages = stages
		rep := Calculate(Input{Process: proc})
		require.Len(t, rep.StageResults, 1)
		assert.Equal(t, 1, rep.Stages)
		assert.InDelta(t, proc.PressureRatio, rep.StageResults[0].PressureRatio, 1e-12)
	}
}

func TestCalculate_Pure(t *testing.T) {
	in := Input{
		Process: baseProcess(),
		Throws:  []Throw{{ID: "A", SACEPct: 80, VVCPPct: 90, SAHEPct: 60}},
		Assignment: map[int][]string{
			1: {"A"}, 2: {"A"}, 3: {"A"},
		},
	}
	first := Calculate(in)
	second := Calculate(in)
	assert.Equal(t, first, second)
}

func TestCalculate_TotalIsPlainSum(t *testing.T) {
	rep := Calculate(Input{Process: baseProcess()})
	sum := 0.0
	for _, st := range rep.StageResults {
		sum += st.ShaftPowerKW
	}
	assert.InDelta(t, sum, rep.TotalPowerKW, 1e-12)
}

func TestCalculate_PolytropicReportedOnly(t *testing.T) {
	with := Calculate(Input{Process: baseProcess()})
	for _, st := range with.StageResults {
		assert.Greater(t, st.PolytropicEff, 0.0)
		assert.Less(t, st.PolytropicEff, 1.0)
		// slightly below the isentropic figure for a compression stage
		assert.Less(t, st.PolytropicEff, st.IsentropicEff+0.05)
	}
}

func TestCalculate_DegeneratePressureRatioStillDefined(t *testing.T) {
	proc := baseProcess()
	proc.PressureRatio = 0.8 // expansion, physically degenerate but accepted
	rep := Calculate(Input{Process: proc})
	require.Len(t, rep.StageResults, 3)
	for _, st := range rep.StageResults {
		assert.False(t, math.IsNaN(st.DischargeTempK))
		assert.False(t, math.IsNaN(st.ShaftPowerKW))
		assert.Less(t, st.ShaftPowerKW, 0.0)
	}
}

func TestValidateProcess(t *testing.T) {
	require.NoError(t, ValidateProcess(baseProcess()))

	bad := baseProcess()
	bad.MassFlowKgS = 0
	require.Error(t, ValidateProcess(bad))

	bad = baseProcess()
	bad.SuctionPressurePa = -1
	require.Error(t, ValidateProcess(bad))

	bad = baseProcess()
	bad.SuctionTempK = 0
	require.Error(t, ValidateProcess(bad))

	bad = baseProcess()
	bad.PressureRatio = 1
	require.Error(t, ValidateProcess(bad))
}
