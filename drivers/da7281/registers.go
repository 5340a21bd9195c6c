// Package da7281 provides a driver for the Renesas/Dialog DA7281 haptic
// driver IC over a shared I2C bus.
//
// Design notes (datasheet references):
// • I2C, 7-bit address selected by two strap pins: 0x48..0x4B; 100/250/400 kHz.
// • Single-byte registers; LRA period and V2I factor span two registers
//   (high byte then low byte).
// • OP_MODE lives in bits [2:0] of TOP_CFG1; amplifier enable is bit 3.
// • Register sub-addresses have moved between silicon revisions, so the map
//   is injectable configuration rather than package constants. RegMapV31 is
//   the datasheet v3.1 layout and the default.
package da7281

// RegisterMap names every register location the driver touches. The state
// machine and encoding arithmetic never depend on the physical addresses.
type RegisterMap struct {
	// Identity (read-only).
	ChipID  uint8
	ChipRev uint8

	// Latched fault/IRQ events; write all-ones to clear.
	IRQEvent uint8

	// Top-level configuration and control.
	TopCfg1 uint8 // OP_MODE bits, AMP_EN
	TopCfg2 uint8 // ACTUATOR_TYPE bits
	GenCfg2 uint8 // OVERRIDE_EN

	// LRA tuning.
	LRAPerH    uint8
	LRAPerL    uint8
	V2IFactorH uint8
	V2IFactorL uint8
	NomMax     uint8
	AbsMax     uint8
	IMax       uint8

	// Direct drive and diagnostics.
	OverrideAmp    uint8
	SelftestCfg    uint8
	SelftestResult uint8 // read-only
}

// RegMapV31 is the register layout from datasheet v3.1.
var RegMapV31 = RegisterMap{
	ChipID:         0x00,
	ChipRev:        0x01,
	IRQEvent:       0x09,
	TopCfg1:        0x13,
	TopCfg2:        0x14,
	GenCfg2:        0x91,
	LRAPerH:        0x96,
	LRAPerL:        0x97,
	V2IFactorH:     0x98,
	V2IFactorL:     0x99,
	NomMax:         0x9B,
	AbsMax:         0x9C,
	IMax:           0x9D,
	OverrideAmp:    0xA9,
	SelftestCfg:    0xAA,
	SelftestResult: 0xAB,
}

// Identity values accepted during the Init handshake.
const (
	chipIDCurrent = 0xCA // production silicon
	chipIDLegacy  = 0xBA // early samples
)

// TOP_CFG1 bitfields.
const (
	opModeMask  = 0x07
	opModeShift = 0
	ampEnable   = 0x08
)

// TOP_CFG2 bitfields.
const (
	motorTypeMask = 0x03
	motorTypeLRA  = 0x00
)

// GEN_CFG2 bitfields.
const overrideEnable = 0x01

// Self-test trigger and result values.
const (
	selftestTrigger = 0x01
	selftestPass    = 0x01
)
