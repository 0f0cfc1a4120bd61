package export

import (
	"encoding/json"
	"fmt"
	"net/http"

	performance "Recip/internal/calc/performance"
	units "Recip/internal/calc/units"

	"github.com/xuri/excelize/v2"
)

type Input struct {
	Title  string             `json:"title"`
	Report performance.Report `json:"report"`
}

type Handler struct{}

// Xlsx writes the per-stage table of a performance report as a spreadsheet
// download. Pressures go out in bar and temperatures in degrees C, matching
// the field units of the input forms.
func (h *Handler) Xlsx(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if len(input.Report.StageResults) == 0 {
		http.Error(w, "Empty report", http.StatusBadRequest)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []interface{}{
		"Stage", "Suction P (bar)", "Discharge P (bar)", "Ratio",
		"Suction T (°C)", "Discharge T (°C)",
		"Isentropic eff", "Polytropic eff", "Power (kW)", "Power (HP)",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	for i, st := range input.Report.StageResults {
		row := []interface{}{
			st.Stage,
			units.PaToBar(st.SuctionPressurePa),
			units.PaToBar(st.DischargePressurePa),
			st.PressureRatio,
			units.KelvinToCelsius(st.SuctionTempK),
			units.KelvinToCelsius(st.DischargeTempK),
			st.IsentropicEff,
			st.PolytropicEff,
			st.ShaftPowerKW,
			units.KWToHP(st.ShaftPowerKW),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			http.Error(w, "Export error", http.StatusInternalServerError)
			return
		}
	}
	totalCell := fmt.Sprintf("A%d", len(input.Report.StageResults)+3)
	totalRow := []interface{}{
		"Total", "", "", "", "", "", "", "",
		input.Report.TotalPowerKW,
		units.KWToHP(input.Report.TotalPowerKW),
	}
	if err := f.SetSheetRow(sheet, totalCell, &totalRow); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"performance.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
