package main

import (
	"fmt"
	"log"
	"os"

	importer "Recip/internal/calc/importer"
	performance "Recip/internal/calc/performance"
	units "Recip/internal/calc/units"

	"github.com/xuri/excelize/v2"
)

// perfsheet runs the performance model over an xlsx case sheet without the
// server: perfsheet cases.xlsx results.xlsx. Input columns match the import
// endpoint (mass flow kg/s, suction bar, suction C, ratio, stages, then
// optional vvcp/sace/sahe).
func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: perfsheet <cases.xlsx> <results.xlsx>")
	}
	inPath, outPath := os.Args[1], os.Args[2]

	f, err := excelize.OpenFile(inPath)
	if err != nil {
		log.Fatalf("open %s: %v", inPath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		log.Fatalf("read sheet: %v", err)
	}
	if len(rows) < 2 {
		log.Fatal("case sheet has no data rows")
	}

	out := excelize.NewFile()
	defer out.Close()
	sheet := out.GetSheetName(0)
	header := []interface{}{
		"Case", "Stage", "Suction P (bar)", "Discharge P (bar)",
		"Suction T (°C)", "Discharge T (°C)", "Isentropic eff", "Power (kW)", "Total (kW)",
	}
	if err := out.SetSheetRow(sheet, "A1", &header); err != nil {
		log.Fatalf("write header: %v", err)
	}

	line := 2
	computed, skipped := 0, 0
	for i := 1; i < len(rows); i++ {
		input, err := importer.ParseCaseRow(rows[i])
		if err != nil {
			log.Printf("row %d skipped: %v", i+1, err)
			skipped++
			continue
		}
		if err := performance.ValidateProcess(input.Process); err != nil {
			log.Printf("row %d skipped: %v", i+1, err)
			skipped++
			continue
		}
		rep := performance.Calculate(input)
		computed++
		for _, st := range rep.StageResults {
			row := []interface{}{
				i, st.Stage,
				units.PaToBar(st.SuctionPressurePa),
				units.PaToBar(st.DischargePressurePa),
				units.KelvinToCelsius(st.SuctionTempK),
				units.KelvinToCelsius(st.DischargeTempK),
				st.IsentropicEff,
				st.ShaftPowerKW,
				rep.TotalPowerKW,
			}
			cell := fmt.Sprintf("A%d", line)
			if err := out.SetSheetRow(sheet, cell, &row); err != nil {
				log.Fatalf("write row: %v", err)
			}
			line++
		}
	}

	if err := out.SaveAs(outPath); err != nil {
		log.Fatalf("save %s: %v", outPath, err)
	}
	log.Printf("%d cases computed, %d skipped, written to %s", computed, skipped, outPath)
}
