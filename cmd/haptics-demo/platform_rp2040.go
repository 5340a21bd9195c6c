//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers"

	"hapticcode-go/drivers/da7281"
	"hapticcode-go/i2cbus"
)

const enablePin = machine.GP12

func platformBuses() i2cbus.Factory {
	return i2cbus.FactoryFunc(func(bus uint8) (drivers.I2C, bool) {
		switch bus {
		case 0:
			if err := machine.I2C0.Configure(machine.I2CConfig{
				Frequency: 400_000,
				SCL:       machine.GP5,
				SDA:       machine.GP4,
			}); err != nil {
				return nil, false
			}
			return machine.I2C0, true
		case 1:
			if err := machine.I2C1.Configure(machine.I2CConfig{
				Frequency: 400_000,
				SCL:       machine.GP3,
				SDA:       machine.GP2,
			}); err != nil {
				return nil, false
			}
			return machine.I2C1, true
		}
		return nil, false
	})
}

func platformEnablePin() da7281.PinOutput {
	enablePin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return func(level bool) { enablePin.Set(level) }
}
