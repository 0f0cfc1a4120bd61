package performance

import "fmt"

// ValidateProcess is the boundary check handlers and importers apply before
// calling Calculate. It is not part of the model contract.
func ValidateProcess(p ProcessInput) error {
	if p.MassFlowKgS <= 0 {
		return fmt.Errorf("invalid mass flow")
	}
	if p.SuctionPressurePa <= 0 {
		return fmt.Errorf("invalid suction pressure")
	}
	if p.SuctionTempK <= 0 {
		return fmt.Errorf("invalid suction temperature")
	}
	if p.PressureRatio <= 1 {
		return fmt.Errorf("pressure ratio must exceed 1")
	}
	return nil
}
