package da7281

import "time"

// PinOutput drives the DA7281 enable line; true powers the chip.
// GPIO ownership stays with the platform, this driver only toggles it.
type PinOutput func(level bool)

// Datasheet minimum power-on settle is 1.5 ms.
const powerOnSettle = 2 * time.Millisecond

// PowerOn raises the enable pin and waits out the power-on settle.
// Call before Init.
func (d *Device) PowerOn(pin PinOutput) {
	pin(true)
	d.sleep(powerOnSettle)
}

// PowerOff drops the enable pin. Any initialized state is stale afterwards;
// callers should Deinit first so the amplifier is off before power is cut.
func (d *Device) PowerOff(pin PinOutput) {
	pin(false)
}
