//go:build !rp2040

package main

import (
	"tinygo.org/x/drivers"

	"hapticcode-go/drivers/da7281"
	"hapticcode-go/i2cbus"
)

// Host builds have no physical bus; every lookup misses so the demo reports
// bus_unconfigured instead of touching hardware.

func platformBuses() i2cbus.Factory {
	return i2cbus.FactoryFunc(func(uint8) (drivers.I2C, bool) { return nil, false })
}

func platformEnablePin() da7281.PinOutput {
	return func(bool) {}
}
