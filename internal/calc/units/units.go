package units

import "fmt"

// Conversions the field units of the input forms need before a process
// record can be built. The performance model is strictly SI (Pa, K, kg/s);
// every conversion happens here, at the caller's side of the boundary.

const (
	kwPerHP      = 1.34102
	paPerBar     = 100000.0
	zeroCelsiusK = 273.15
	m3hToE3m3d   = 24.0 / 1000.0
	m3hToMMSCFD  = 0.000588577
)

func BarToPa(bar float64) float64       { return bar * paPerBar }
func PaToBar(pa float64) float64        { return pa / paPerBar }
func CelsiusToKelvin(c float64) float64 { return c + zeroCelsiusK }
func KelvinToCelsius(k float64) float64 { return k - zeroCelsiusK }
func MMToM(mm float64) float64          { return mm / 1000.0 }
func MToMM(m float64) float64           { return m * 1000.0 }
func KWToHP(kw float64) float64         { return kw * kwPerHP }
func HPToKW(hp float64) float64         { return hp / kwPerHP }

// Gas flow conversions between metric field units and the e3m3/d and MMSCFD
// figures used in reporting.
func M3hToE3m3d(m3h float64) float64  { return m3h * m3hToE3m3d }
func M3hToMMSCFD(m3h float64) float64 { return m3h * m3hToMMSCFD }

// Convert dispatches on unit names as sent by the convert endpoint.
func Convert(value float64, from, to string) (float64, error) {
	if from == to {
		return value, nil
	}
	switch from + ">" + to {
	case "bar>pa":
		return BarToPa(value), nil
	case "pa>bar":
		return PaToBar(value), nil
	case "c>k":
		return CelsiusToKelvin(value), nil
	case "k>c":
		return KelvinToCelsius(value), nil
	case "mm>m":
		return MMToM(value), nil
	case "m>mm":
		return MToMM(value), nil
	case "kw>hp":
		return KWToHP(value), nil
	case "hp>kw":
		return HPToKW(value), nil
	case "m3/h>e3m3/d":
		return M3hToE3m3d(value), nil
	case "m3/h>mmscfd":
		return M3hToMMSCFD(value), nil
	}
	return 0, fmt.Errorf("unsupported conversion %q to %q", from, to)
}
