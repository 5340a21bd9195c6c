package da7281

import (
	"math"

	"hapticcode-go/x/mathx"
)

// Encoding constants pinned from datasheet v3.1. The period is computed in
// integer arithmetic: round((1/f)/1.024e-6) == round(976562.5/f), expressed
// as RoundDiv(1_953_125, 2f) to stay exact.
const (
	periodNumerator = 1_953_125 // 2 × (1 s / 1.024 µs)

	v2iScale      = 1.5     // V2I_FACTOR multiplier per Ω
	nomMaxScaleMV = 23.4375 // mV per NOMMAX LSB
	absMaxScaleMV = 48.75   // mV per ABSMAX LSB
	iMaxScaleMA   = 7.8125  // mA per IMAX LSB
)

// LRAConfig describes the physical actuator. Values are taken from the LRA
// datasheet, not measured.
type LRAConfig struct {
	ResonantFreqHz uint16  // e.g. 170
	ImpedanceOhm   float32 // e.g. 6.75
	NomMaxVRMS     float32 // nominal drive limit, V RMS
	AbsMaxVPeak    float32 // absolute protection limit, V peak
	MaxCurrentMA   uint16  // e.g. 350
}

// LRAEncoding is the register-ready form of an LRAConfig. Each field is
// derived independently; ConfigureLRA writes them in a fixed order.
type LRAEncoding struct {
	Period    uint16 // LRA_PER, 1.024 µs units
	V2IFactor uint16 // impedance × 1.5
	NomMax    uint8  // 23.4375 mV units, truncated
	AbsMax    uint8  // 48.75 mV units, truncated
	IMax      uint8  // 7.8125 mA units, rounded
}

// encodeLRA derives all five register codes. Pure; inputs are assumed
// validated but the clamps hold for any input:
// 16-bit codes land in [1, 65535], 8-bit codes in [0, 255].
func encodeLRA(c LRAConfig) LRAEncoding {
	period := mathx.RoundDiv(uint32(periodNumerator), 2*uint32(c.ResonantFreqHz))
	v2i := int64(math.Round(float64(c.ImpedanceOhm) * v2iScale))

	// Voltage codes truncate; rounding up could exceed the actuator limit.
	nom := int64(float64(c.NomMaxVRMS) * 1000 / nomMaxScaleMV)
	abs := int64(float64(c.AbsMaxVPeak) * 1000 / absMaxScaleMV)
	imax := int64(math.Round(float64(c.MaxCurrentMA) / iMaxScaleMA))

	return LRAEncoding{
		Period:    uint16(mathx.Clamp(int64(period), 1, 65535)),
		V2IFactor: uint16(mathx.Clamp(v2i, 1, 65535)),
		NomMax:    uint8(mathx.Clamp(nom, 0, 255)),
		AbsMax:    uint8(mathx.Clamp(abs, 0, 255)),
		IMax:      uint8(mathx.Clamp(imax, 0, 255)),
	}
}
