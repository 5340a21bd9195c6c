package da7281

import (
	"errors"

	"hapticcode-go/x/mathx"
)

// Sentinel errors (TinyGo-safe; no fmt). All map to errcode.InvalidArgument
// at the device boundary and are checked before any bus I/O.
var (
	ErrBadAddress   = errors.New("da7281: address must be 0x48..0x4B")
	ErrBadFrequency = errors.New("da7281: resonant frequency outside 50..300 Hz")
	ErrBadImpedance = errors.New("da7281: impedance outside 1..50 ohm")
	ErrBadNomMax    = errors.New("da7281: nominal voltage outside 0.5..6.0 V RMS")
	ErrBadAbsMax    = errors.New("da7281: absolute voltage outside 1.0..12.0 V peak")
	ErrBadCurrent   = errors.New("da7281: max current outside 50..500 mA")
	ErrBadMode      = errors.New("da7281: mode outside the 6-value domain")
)

// Datasheet operating limits for LRA parameters.
const (
	minFreqHz, maxFreqHz       = 50, 300
	minImpedanceOhm            = 1.0
	maxImpedanceOhm            = 50.0
	minNomVRMS, maxNomVRMS     = 0.5, 6.0
	minAbsVPeak, maxAbsVPeak   = 1.0, 12.0
	minCurrentMA, maxCurrentMA = 50, 500
)

// Validate checks every field against the datasheet limits. It reports the
// first violation; nothing is written to hardware on failure.
func (c LRAConfig) Validate() error {
	if !mathx.Between(c.ResonantFreqHz, minFreqHz, maxFreqHz) {
		return ErrBadFrequency
	}
	if !mathx.Between(c.ImpedanceOhm, minImpedanceOhm, maxImpedanceOhm) {
		return ErrBadImpedance
	}
	if !mathx.Between(c.NomMaxVRMS, minNomVRMS, maxNomVRMS) {
		return ErrBadNomMax
	}
	if !mathx.Between(c.AbsMaxVPeak, minAbsVPeak, maxAbsVPeak) {
		return ErrBadAbsMax
	}
	if !mathx.Between(c.MaxCurrentMA, minCurrentMA, maxCurrentMA) {
		return ErrBadCurrent
	}
	return nil
}

func validAddress(addr uint16) bool {
	return addr >= 0x48 && addr <= 0x4B
}
