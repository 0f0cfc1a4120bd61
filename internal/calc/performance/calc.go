package performance

import "math"

// Placeholder gas properties for natural-gas-like mixtures. The composition
// entered on the gas form does not feed these yet; see internal/calc/gas.
const (
	Gamma   = 1.30
	CpKJKgK = 2.0
)

// Isentropic efficiency bounds for this class of machine. The blend formula
// is clamped here no matter how far the throw percentages stray from 0-100.
const (
	EtaMin = 0.65
	EtaMax = 0.92
)

type ProcessInput struct {
	MassFlowKgS       float64 `json:"mass_flow_kg_s"`
	SuctionPressurePa float64 `json:"suction_pressure_pa"`
	SuctionTempK      float64 `json:"suction_temp_k"`
	Stages            int     `json:"stages"`
	PressureRatio     float64 `json:"pressure_ratio"`
}

// Throw is one cylinder/piston assembly on the frame. Bore and clearance are
// carried for stored configurations but do not enter the power formulas.
type Throw struct {
	ID           string  `json:"id"`
	VVCPPct      float64 `json:"vvcp_pct"`
	SACEPct      float64 `json:"sace_pct"`
	SAHEPct      float64 `json:"sahe_pct"`
	BoreMM       float64 `json:"bore_mm"`
	ClearancePct float64 `json:"clearance_pct"`
}

// Input couples the process conditions with the mechanical side: the throws
// on the frame and which of them serve each stage. A stage may map to zero,
// one or many throws; percentages are averaged over the assigned set.
type Input struct {
	Process    ProcessInput     `json:"process"`
	Throws     []Throw          `json:"throws"`
	Assignment map[int][]string `json:"assignment"`
}

type StageResult struct {
	Stage               int     `json:"stage"`
	SuctionPressurePa   float64 `json:"suction_pressure_pa"`
	DischargePressurePa float64 `json:"discharge_pressure_pa"`
	PressureRatio       float64 `json:"pressure_ratio"`
	SuctionTempK        float64 `json:"suction_temp_k"`
	DischargeTempK      float64 `json:"discharge_temp_k"`
	IsentropicEff       float64 `json:"isentropic_eff"`
	PolytropicEff       float64 `json:"polytropic_eff"`
	ShaftPowerKW        float64 `json:"shaft_power_kw"`
}

type Report struct {
	MassFlowKgS       float64       `json:"mass_flow_kg_s"`
	SuctionPressurePa float64       `json:"suction_pressure_pa"`
	SuctionTempK      float64       `json:"suction_temp_k"`
	Stages            int           `json:"stages"`
	PressureRatio     float64       `json:"pressure_ratio"`
	StageResults      []StageResult `json:"stage_results"`
	TotalPowerKW      float64       `json:"total_power_kw"`
}

// Calculate runs the multi-stage compression model. It never returns an
// error: a non-positive stage count is treated as 1 and every other guard is
// a clamp, so any input produces a numerically defined report. Physically
// sensible ranges are the caller's responsibility.
func Calculate(in Input) Report {
	stages := in.Process.Stages
	if stages < 1 {
		stages = 1
	}

	// Uniform geometric split of the total ratio across stages.
	stageRatio := math.Pow(in.Process.PressureRatio, 1.0/float64(stages))

	byID := make(map[string]Throw, len(in.Throws))
	for _, th := range in.Throws {
		byID[th.ID] = th
	}

	results := make([]StageResult, 0, stages)
	tIn := in.Process.SuctionTempK
	total := 0.0
	for s := 1; s <= stages; s++ {
		pIn := in.Process.SuctionPressurePa * math.Pow(stageRatio, float64(s-1))
		pOut := pIn * stageRatio

		vvcp, sace, sahe := stagePercentages(byID, in.Assignment[s])
		eta := isentropicEff(vvcp, sace, sahe)

		tIsent := tIn * math.Pow(stageRatio, (Gamma-1.0)/Gamma)
		tOut := tIn + (tIsent-tIn)/math.Max(eta, 1e-6)
		power := in.Process.MassFlowKgS * CpKJKgK * (tOut - tIn) / 1000.0

		results = append(results, StageResult{
			Stage:               s,
			SuctionPressurePa:   pIn,
			DischargePressurePa: pOut,
			PressureRatio:       stageRatio,
			SuctionTempK:        tIn,
			DischargeTempK:      tOut,
			IsentropicEff:       eta,
			PolytropicEff:       polytropicEff(stageRatio, tIn, tOut),
			ShaftPowerKW:        power,
		})
		total += power
		tIn = tOut
	}

	return Report{
		MassFlowKgS:       in.Process.MassFlowKgS,
		SuctionPressurePa: in.Process.SuctionPressurePa,
		SuctionTempK:      in.Process.SuctionTempK,
		Stages:            stages,
		PressureRatio:     in.Process.PressureRatio,
		StageResults:      results,
		TotalPowerKW:      total,
	}
}

// stagePercentages averages VVCP/SACE/SAHE over the throws assigned to a
// stage. Unknown throw IDs count as zero-percentage throws; an empty
// assignment yields all zeros, which floors the efficiency.
func stagePercentages(byID map[string]Throw, ids []string) (vvcp, sace, sahe float64) {
	if len(ids) == 0 {
		return 0, 0, 0
	}
	for _, id := range ids {
		th := byID[id]
		vvcp += th.VVCPPct
		sace += th.SACEPct
		sahe += th.SAHEPct
	}
	n := float64(len(ids))
	return vvcp / n, sace / n, sahe / n
}

// isentropicEff blends the throw percentages into an efficiency. SACE and
// SAHE raise it, VVCP lowers it (a larger clearance pocket reduces effective
// swept volume). Clamped to [EtaMin, EtaMax] regardless of input range.
func isentropicEff(vvcp, sace, sahe float64) float64 {
	eta := 0.65 + 0.15*(sace/100.0) - 0.05*(vvcp/100.0) + 0.10*(sahe/100.0)
	if eta < EtaMin {
		eta = EtaMin
	}
	if eta > EtaMax {
		eta = EtaMax
	}
	return eta
}

// polytropicEff is reported on each stage but does not feed back into the
// temperature or power figures.
func polytropicEff(stageRatio, tIn, tOut float64) float64 {
	rise := math.Log(tOut / tIn)
	if rise == 0 || math.IsNaN(rise) || math.IsInf(rise, 0) {
		return 0
	}
	return (Gamma - 1.0) / Gamma * math.Log(stageRatio) / rise
}
