package importer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	performance "Recip/internal/calc/performance"
	units "Recip/internal/calc/units"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type ImportResult struct {
	Count   int                  `json:"count"`
	Reports []performance.Report `json:"reports"`
}

// Import accepts an xlsx case sheet. Pressures come in bar and temperatures
// in degrees C, as on the field forms; rows are converted to SI here before
// the model runs. Unparseable or invalid rows are skipped.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var reports []performance.Report
	for i := 1; i < len(rows); i++ {
		input, err := ParseCaseRow(rows[i])
		if err != nil {
			continue
		}
		if err := performance.ValidateProcess(input.Process); err != nil {
			continue
		}
		reports = append(reports, performance.Calculate(input))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ImportResult{Count: len(reports), Reports: reports})
}

// ParseCaseRow reads one case row:
// mass_flow_kg_s, suction_p_bar, suction_t_c, pressure_ratio, stages,
// then optional vvcp, sace, sahe percentages for a single throw assigned to
// every stage.
func ParseCaseRow(row []string) (performance.Input, error) {
	if len(row) < 5 {
		return performance.Input{}, fmt.Errorf("bad row")
	}
	massFlow, err := toFloat(row[0])
	if err != nil {
		return performance.Input{}, err
	}
	pBar, err := toFloat(row[1])
	if err != nil {
		return performance.Input{}, err
	}
	tC, err := toFloat(row[2])
	if err != nil {
		return performance.Input{}, err
	}
	ratio, err := toFloat(row[3])
	if err != nil {
		return performance.Input{}, err
	}
	stages, err := strconv.Atoi(row[4])
	if err != nil {
		return performance.Input{}, err
	}

	in := performance.Input{
		Process: performance.ProcessInput{
			MassFlowKgS:       massFlow,
			SuctionPressurePa: units.BarToPa(pBar),
			SuctionTempK:      units.CelsiusToKelvin(tC),
			Stages:            stages,
			PressureRatio:     ratio,
		},
	}

	if len(row) > 7 && (row[5] != "" || row[6] != "" || row[7] != "") {
		th := performance.Throw{ID: "row"}
		th.VVCPPct, _ = toFloat(row[5])
		th.SACEPct, _ = toFloat(row[6])
		th.SAHEPct, _ = toFloat(row[7])
		in.Throws = []performance.Throw{th}
		in.Assignment = make(map[int][]string, stages)
		for s := 1; s <= stages; s++ {
			in.Assignment[s] = []string{th.ID}
		}
	}

	return in, nil
}

func toFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
