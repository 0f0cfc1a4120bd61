package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	performance "Recip/internal/calc/performance"
	units "Recip/internal/calc/units"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string             `json:"project"`
	Author  string             `json:"author"`
	Title   string             `json:"title"`
	Notes   string             `json:"notes"`
	Report  performance.Report `json:"report"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Compressor Performance Report"
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	rep := input.Report
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf(
		"Mass flow: %.2f kg/s   Suction: %.2f bar / %.1f C   Stages: %d   Total ratio: %.2f",
		rep.MassFlowKgS,
		units.PaToBar(rep.SuctionPressurePa),
		units.KelvinToCelsius(rep.SuctionTempK),
		rep.Stages,
		rep.PressureRatio,
	))
	pdf.Ln(10)

	widths := []float64{14, 30, 30, 20, 28, 28, 24, 24, 26, 26}
	headers := []string{
		"Stage", "Suction (bar)", "Discharge (bar)", "Ratio",
		"T suc (C)", "T dis (C)", "Eff isen", "Eff poly", "Power (kW)", "Power (HP)",
	}
	pdf.SetFont("Helvetica", "B", 9)
	for i, hd := range headers {
		pdf.CellFormat(widths[i], 7, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, st := range rep.StageResults {
		cells := []string{
			fmt.Sprintf("%d", st.Stage),
			fmt.Sprintf("%.2f", units.PaToBar(st.SuctionPressurePa)),
			fmt.Sprintf("%.2f", units.PaToBar(st.DischargePressurePa)),
			fmt.Sprintf("%.4f", st.PressureRatio),
			fmt.Sprintf("%.1f", units.KelvinToCelsius(st.SuctionTempK)),
			fmt.Sprintf("%.1f", units.KelvinToCelsius(st.DischargeTempK)),
			fmt.Sprintf("%.3f", st.IsentropicEff),
			fmt.Sprintf("%.3f", st.PolytropicEff),
			fmt.Sprintf("%.2f", st.ShaftPowerKW),
			fmt.Sprintf("%.2f", units.KWToHP(st.ShaftPowerKW)),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Total shaft power: %.2f kW (%.2f HP)",
		rep.TotalPowerKW, units.KWToHP(rep.TotalPowerKW)))
	if input.Notes != "" {
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"performance.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
