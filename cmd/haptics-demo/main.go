// cmd/haptics-demo/main.go
//
// Drives a DA7281 evaluation setup through the full HAL surface: power-on,
// handshake, LRA configuration, self-test, then amplitude pulses in DRO mode.
package main

import (
	"time"

	"hapticcode-go/drivers/da7281"
	"hapticcode-go/i2cbus"
)

// 170 Hz / 6.75 Ω LRA from the evaluation board.
var lra = da7281.LRAConfig{
	ResonantFreqHz: 170,
	ImpedanceOhm:   6.75,
	NomMaxVRMS:     2.5,
	AbsMaxVPeak:    3.5,
	MaxCurrentMA:   350,
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	reg := i2cbus.New(platformBuses(), 0)
	dev, err := da7281.New(reg, da7281.Config{Bus: 0, Address: 0x4A})
	if err != nil {
		println("config:", err.Error())
		return
	}

	dev.PowerOn(platformEnablePin())
	if err := dev.Init(); err != nil {
		println("init:", err.Error())
		return
	}
	println("handshake ok")

	if err := dev.ConfigureLRA(lra); err != nil {
		println("configure:", err.Error())
		return
	}

	if passed, err := dev.RunSelfTest(); err != nil {
		println("selftest:", err.Error())
	} else if passed {
		println("selftest passed")
	} else {
		println("selftest FAILED - check LRA wiring")
	}

	if err := dev.SetMode(da7281.ModeDRO); err != nil {
		println("mode:", err.Error())
		return
	}
	if err := dev.SetOverrideEnable(true); err != nil {
		println("override:", err.Error())
		return
	}
	if err := dev.SetAmplifierEnable(true); err != nil {
		println("amplifier:", err.Error())
		return
	}

	// Increasing amplitude: 25%, 50%, 75%, 100%.
	for {
		for _, amp := range []uint8{64, 128, 192, 255} {
			pulse(dev, amp, 200*time.Millisecond)
			time.Sleep(300 * time.Millisecond)
		}
		time.Sleep(2 * time.Second)
	}
}

func pulse(dev *da7281.Device, amplitude uint8, d time.Duration) {
	if err := dev.SetOverrideAmplitude(amplitude); err != nil {
		println("pulse:", err.Error())
		return
	}
	time.Sleep(d)
	_ = dev.SetOverrideAmplitude(0)
}
