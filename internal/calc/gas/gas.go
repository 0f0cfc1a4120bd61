package gas

import "fmt"

// Composition holds mole percentages of a natural-gas mixture as entered on
// the gas form.
type Composition struct {
	CH4Pct  float64 `json:"ch4_pct"`
	C2H6Pct float64 `json:"c2h6_pct"`
	C3H8Pct float64 `json:"c3h8_pct"`
	CO2Pct  float64 `json:"co2_pct"`
	N2Pct   float64 `json:"n2_pct"`
}

// Properties is the thermodynamic set the performance model consumes.
type Properties struct {
	Gamma   float64 `json:"gamma"`
	CpKJKgK float64 `json:"cp_kj_kg_k"`
	Notes   string  `json:"notes"`
}

func (c Composition) Total() float64 {
	return c.CH4Pct + c.C2H6Pct + c.C3H8Pct + c.CO2Pct + c.N2Pct
}

// Normalized scales the percentages so they sum to 100. A zero composition
// is returned unchanged.
func (c Composition) Normalized() Composition {
	total := c.Total()
	if total == 0 {
		return c
	}
	f := 100.0 / total
	return Composition{
		CH4Pct:  c.CH4Pct * f,
		C2H6Pct: c.C2H6Pct * f,
		C3H8Pct: c.C3H8Pct * f,
		CO2Pct:  c.CO2Pct * f,
		N2Pct:   c.N2Pct * f,
	}
}

func (c Composition) Validate() error {
	for _, v := range []float64{c.CH4Pct, c.C2H6Pct, c.C3H8Pct, c.CO2Pct, c.N2Pct} {
		if v < 0 || v > 100 {
			return fmt.Errorf("component fraction out of range")
		}
	}
	total := c.Total()
	if total < 95 || total > 105 {
		return fmt.Errorf("composition must sum to about 100%%, got %.1f", total)
	}
	return nil
}

// PropertiesOf returns the mixture properties for a composition. Real
// mixture calculation (compressibility, mixture Cp/gamma) is not implemented;
// every valid composition currently maps to the same fixed placeholder set,
// which is also what the performance model hard-codes.
func PropertiesOf(c Composition) Properties {
	_ = c.Normalized()
	return Properties{
		Gamma:   1.30,
		CpKJKgK: 2.0,
		Notes:   "Fixed placeholder properties; composition not yet used.",
	}
}
