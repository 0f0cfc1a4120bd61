package driver

import (
	"fmt"
	"math"
)

type Kind string

const (
	KindGasEngine     Kind = "gas_engine"
	KindElectricMotor Kind = "electric_motor"
)

type Input struct {
	Kind                 Kind    `json:"kind"`
	NominalPowerKW       float64 `json:"nominal_power_kw"`
	EfficiencyPct        float64 `json:"efficiency_pct"`
	RequiredShaftPowerKW float64 `json:"required_shaft_power_kw"`
	RatedRPM             float64 `json:"rated_rpm"`
	TorqueNM             float64 `json:"torque_nm"`
	// gas engine only
	FuelConsumptionNm3h  float64 `json:"fuel_consumption_nm3_h"`
	ThermalEfficiencyPct float64 `json:"thermal_efficiency_pct"`
	// electric motor only
	PowerFactor float64 `json:"power_factor"`
}

type Result struct {
	AvailablePowerKW   float64 `json:"available_power_kw"`
	UtilizationPct     float64 `json:"utilization_pct"`
	OKPower            bool    `json:"ok_power"`
	TorquePowerKW      float64 `json:"torque_power_kw"`
	OKTorque           bool    `json:"ok_torque"`
	SpecificFuelNm3KWh float64 `json:"specific_fuel_nm3_kwh,omitempty"`
	ApparentPowerKVA   float64 `json:"apparent_power_kva,omitempty"`
	Notes              string  `json:"notes"`
}

// Calculate checks the selected driver against the compressor's required
// shaft power. Defaults follow the input form: 90% mechanical efficiency for
// gas engines, 95% electrical efficiency and 0.9 power factor for motors.
func Calculate(in Input) (Result, error) {
	if in.NominalPowerKW <= 0 || in.RequiredShaftPowerKW <= 0 {
		return Result{}, fmt.Errorf("invalid input")
	}
	if in.Kind != KindGasEngine && in.Kind != KindElectricMotor {
		return Result{}, fmt.Errorf("invalid driver kind")
	}
	if in.EfficiencyPct <= 0 || in.EfficiencyPct > 100 {
		if in.Kind == KindGasEngine {
			in.EfficiencyPct = 90
		} else {
			in.EfficiencyPct = 95
		}
	}

	available := in.NominalPowerKW * in.EfficiencyPct / 100.0
	util := in.RequiredShaftPowerKW / available * 100.0

	res := Result{
		AvailablePowerKW: available,
		UtilizationPct:   util,
		OKPower:          util <= 100.0,
		Notes:            "Driver check against required compressor shaft power.",
	}

	// Torque consistency when a rated speed is given: P = 2*pi*n/60 * T.
	if in.RatedRPM > 0 && in.TorqueNM > 0 {
		res.TorquePowerKW = 2.0 * math.Pi * in.RatedRPM / 60.0 * in.TorqueNM / 1000.0
		res.OKTorque = res.TorquePowerKW >= in.RequiredShaftPowerKW
	}

	switch in.Kind {
	case KindGasEngine:
		if in.FuelConsumptionNm3h > 0 {
			res.SpecificFuelNm3KWh = in.FuelConsumptionNm3h / available
		}
	case KindElectricMotor:
		pf := in.PowerFactor
		if pf <= 0 || pf > 1 {
			pf = 0.9
		}
		res.ApparentPowerKVA = in.NominalPowerKW / pf
	}

	return res, nil
}
