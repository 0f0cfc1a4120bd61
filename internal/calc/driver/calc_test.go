package driver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_GasEngine(t *testing.T) {
	res, err := Calculate(Input{
		Kind:                 KindGasEngine,
		NominalPowerKW:       500,
		EfficiencyPct:        90,
		RequiredShaftPowerKW: 400,
		FuelConsumptionNm3h:  200,
	})
	require.NoError(t, err)
	assert.InDelta(t, 450, res.AvailablePowerKW, 1e-9)
	assert.InDelta(t, 400.0/450.0*100, res.UtilizationPct, 1e-9)
	assert.True(t, res.OKPower)
	assert.InDelta(t, 200.0/450.0, res.SpecificFuelNm3KWh, 1e-9)
	assert.Zero(t, res.ApparentPowerKVA)
}

func TestCalculate_ElectricMotorDefaults(t *testing.T) {
	res, err := Calculate(Input{
		Kind:                 KindElectricMotor,
		NominalPowerKW:       500,
		RequiredShaftPowerKW: 490,
	})
	require.NoError(t, err)
	// defaulted 95% efficiency
	assert.InDelta(t, 475, res.AvailablePowerKW, 1e-9)
	assert.False(t, res.OKPower)
	// defaulted 0.9 power factor
	assert.InDelta(t, 500/0.9, res.ApparentPowerKVA, 1e-9)
}

func TestCalculate_TorqueCheck(t *testing.T) {
	res, err := Calculate(Input{
		Kind:                 KindElectricMotor,
		NominalPowerKW:       500,
		EfficiencyPct:        95,
		RequiredShaftPowerKW: 100,
		RatedRPM:             1000,
		TorqueNM:             1000,
	})
	require.NoError(t, err)
	want := 2 * math.Pi * 1000 / 60 * 1000 / 1000
	assert.InDelta(t, want, res.TorquePowerKW, 1e-9)
	assert.True(t, res.OKTorque)
}

func TestCalculate_InvalidInput(t *testing.T) {
	_, err := Calculate(Input{Kind: KindGasEngine, NominalPowerKW: 0, RequiredShaftPowerKW: 100})
	require.Error(t, err)
	_, err = Calculate(Input{Kind: "steam", NominalPowerKW: 100, RequiredShaftPowerKW: 100})
	require.Error(t, err)
}
