package da7281

import (
	"sync"
	"time"

	"hapticcode-go/errcode"
	"hapticcode-go/x/conv"
)

// Transport performs serialized single-register transactions against a
// specific bus. *i2cbus.Registry satisfies it.
type Transport interface {
	WriteReg(bus uint8, addr uint16, reg, value uint8) error
	ReadReg(bus uint8, addr uint16, reg uint8) (uint8, error)
	ModifyReg(bus uint8, addr uint16, reg, mask, bits uint8) error
}

// Mode is a DA7281 operation mode. The raw values are the OP_MODE field
// encoding; note 0x05 and 0x07 are not assigned.
type Mode uint8

const (
	ModeInactive Mode = 0x00
	ModeDRO      Mode = 0x01 // direct register override
	ModePWM      Mode = 0x02
	ModeRTWM     Mode = 0x03 // real-time waveform memory
	ModeETWM     Mode = 0x04 // embedded waveform memory
	ModeStandby  Mode = 0x06
)

func (m Mode) valid() bool {
	switch m {
	case ModeInactive, ModeDRO, ModePWM, ModeRTWM, ModeETWM, ModeStandby:
		return true
	}
	return false
}

func (m Mode) String() string {
	switch m {
	case ModeInactive:
		return "INACTIVE"
	case ModeDRO:
		return "DRO"
	case ModePWM:
		return "PWM"
	case ModeRTWM:
		return "RTWM"
	case ModeETWM:
		return "ETWM"
	case ModeStandby:
		return "STANDBY"
	}
	return "MODE_0x" + conv.U8Hex(uint8(m))
}

// Device lifecycle states. initing authorises the same register operations
// ready does, so Init can drive the mode-setter before the device is
// publicly initialized.
const (
	stateUninit uint8 = iota
	stateIniting
	stateReady
)

// Config identifies one DA7281 on a shared bus.
type Config struct {
	// Bus is the I2C channel id understood by the Transport.
	Bus uint8
	// Address is the 7-bit strap-selected address, 0x48..0x4B.
	// Zero selects DefaultAddress.
	Address uint16
	// Regs overrides the register layout; nil selects RegMapV31.
	Regs *RegisterMap
}

// DefaultAddress matches ADDR_1=VDDIO, ADDR_0=GND straps.
const DefaultAddress = 0x4A

// Settle times around mode changes and the built-in self test.
const (
	modeSettle     = 10 * time.Millisecond
	selftestSettle = 150 * time.Millisecond
)

// Device owns one DA7281's lifecycle. The embedded mutex guards the
// in-memory state machine only; the Transport serializes the physical bus.
type Device struct {
	tr   Transport
	bus  uint8
	addr uint16
	regs *RegisterMap

	mu    sync.Mutex
	state uint8
	mode  Mode

	// Overridable in tests; the self-test settle is 150 ms of wall time.
	sleep func(time.Duration)
}

// New creates a Device handle. It does not touch hardware; call Init first.
func New(tr Transport, cfg Config) (*Device, error) {
	addr := cfg.Address
	if addr == 0 {
		addr = DefaultAddress
	}
	if !validAddress(addr) {
		return nil, &errcode.E{C: errcode.InvalidArgument, Op: "da7281.New", Err: ErrBadAddress}
	}
	regs := cfg.Regs
	if regs == nil {
		regs = &RegMapV31
	}
	return &Device{
		tr:    tr,
		bus:   cfg.Bus,
		addr:  addr,
		regs:  regs,
		sleep: time.Sleep,
	}, nil
}

// Addr reports the configured 7-bit address.
func (d *Device) Addr() uint16 { return d.addr }

// Initialized reports whether the handshake has completed.
func (d *Device) Initialized() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state == stateReady
}

// Init performs the identity handshake and places the chip into a known
// configuration: faults cleared, actuator type LRA, mode INACTIVE.
// On any failure the device reverts to uninitialized.
func (d *Device) Init() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != stateUninit {
		return &errcode.E{C: errcode.AlreadyInitialized, Op: "da7281.Init"}
	}

	id, err := d.tr.ReadReg(d.bus, d.addr, d.regs.ChipID)
	if err != nil {
		return err
	}
	if id != chipIDCurrent && id != chipIDLegacy {
		return &errcode.E{C: errcode.Protocol, Op: "da7281.Init",
			Msg: "chip id 0x" + conv.U8Hex(id)}
	}

	// Clear latched faults. Best effort: a chip that NACKs here still
	// responds to configuration, so this never fails the handshake.
	if err := d.tr.WriteReg(d.bus, d.addr, d.regs.IRQEvent, 0xFF); err != nil {
		println("[da7281] fault clear failed (non-fatal):", err.Error())
	}

	if err := d.tr.ModifyReg(d.bus, d.addr, d.regs.TopCfg2, motorTypeMask, motorTypeLRA); err != nil {
		return err
	}
	// Read-back is diagnostic only; write success is authoritative.
	if got, err := d.tr.ReadReg(d.bus, d.addr, d.regs.TopCfg2); err == nil {
		if got&motorTypeMask != motorTypeLRA {
			println("[da7281] actuator type read-back mismatch: 0x" + conv.U8Hex(got))
		}
	}

	d.state = stateIniting
	if err := d.setModeLocked(ModeInactive); err != nil {
		d.state = stateUninit
		return err
	}
	d.state = stateReady
	return nil
}

// Deinit forces INACTIVE, disables the amplifier and clears the initialized
// flag. Both hardware steps are best effort; Deinit is idempotent and
// always succeeds.
func (d *Device) Deinit() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == stateUninit {
		return nil
	}
	if err := d.setModeLocked(ModeInactive); err != nil {
		println("[da7281] deinit: force inactive failed:", err.Error())
	}
	if err := d.tr.ModifyReg(d.bus, d.addr, d.regs.TopCfg1, ampEnable, 0); err != nil {
		println("[da7281] deinit: amplifier disable failed:", err.Error())
	}
	d.state = stateUninit
	d.mode = ModeInactive
	return nil
}

// SetMode selects an operation mode. Invalid modes are rejected before any
// bus I/O; the in-memory mode follows the register write, not the read-back.
func (d *Device) SetMode(m Mode) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireReady("da7281.SetMode"); err != nil {
		return err
	}
	return d.setModeLocked(m)
}

func (d *Device) setModeLocked(m Mode) error {
	if !m.valid() {
		return &errcode.E{C: errcode.InvalidArgument, Op: "da7281.SetMode", Err: ErrBadMode}
	}

	bits := (uint8(m) << opModeShift) & opModeMask
	if err := d.tr.ModifyReg(d.bus, d.addr, d.regs.TopCfg1, opModeMask, bits); err != nil {
		return err
	}

	// Diagnostic read-back; the chip may apply the write a cycle late.
	if got, err := d.tr.ReadReg(d.bus, d.addr, d.regs.TopCfg1); err == nil {
		if decodeMode(got) != m {
			println("[da7281] mode read-back mismatch: want", m.String(),
				"got", decodeMode(got).String())
		}
	}

	d.mode = m
	return nil
}

// GetMode reads and decodes the mode field from hardware. No state change.
func (d *Device) GetMode() (Mode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireReady("da7281.GetMode"); err != nil {
		return 0, err
	}
	v, err := d.tr.ReadReg(d.bus, d.addr, d.regs.TopCfg1)
	if err != nil {
		return 0, err
	}
	return decodeMode(v), nil
}

func decodeMode(topCfg1 uint8) Mode {
	return Mode((topCfg1 & opModeMask) >> opModeShift)
}

// SetOverrideAmplitude writes the direct drive level (0 = off, 255 = max).
// It takes effect only in DRO mode with override enabled; this layer does
// not enforce that.
func (d *Device) SetOverrideAmplitude(amplitude uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireReady("da7281.SetOverrideAmplitude"); err != nil {
		return err
	}
	return d.tr.WriteReg(d.bus, d.addr, d.regs.OverrideAmp, amplitude)
}

// SetOverrideEnable gates the override amplitude path in GEN_CFG2.
func (d *Device) SetOverrideEnable(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireReady("da7281.SetOverrideEnable"); err != nil {
		return err
	}
	var bits uint8
	if enable {
		bits = overrideEnable
	}
	return d.tr.ModifyReg(d.bus, d.addr, d.regs.GenCfg2, overrideEnable, bits)
}

// SetAmplifierEnable switches the output amplifier on or off.
func (d *Device) SetAmplifierEnable(enable bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireReady("da7281.SetAmplifierEnable"); err != nil {
		return err
	}
	var bits uint8
	if enable {
		bits = ampEnable
	}
	return d.tr.ModifyReg(d.bus, d.addr, d.regs.TopCfg1, ampEnable, bits)
}

// ConfigureLRA validates the actuator parameters, derives the register codes
// and writes them in fixed order: period (H, L), V2I factor (H, L), nominal
// voltage, absolute voltage, max current. The first failure aborts the rest.
// There is no rollback; after a mid-sequence error the chip holds a mixed
// configuration and the caller must re-run ConfigureLRA in full.
func (d *Device) ConfigureLRA(cfg LRAConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireReady("da7281.ConfigureLRA"); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return &errcode.E{C: errcode.InvalidArgument, Op: "da7281.ConfigureLRA", Err: err}
	}

	enc := encodeLRA(cfg)
	writes := []struct {
		reg   uint8
		value uint8
	}{
		{d.regs.LRAPerH, uint8(enc.Period >> 8)},
		{d.regs.LRAPerL, uint8(enc.Period)},
		{d.regs.V2IFactorH, uint8(enc.V2IFactor >> 8)},
		{d.regs.V2IFactorL, uint8(enc.V2IFactor)},
		{d.regs.NomMax, enc.NomMax},
		{d.regs.AbsMax, enc.AbsMax},
		{d.regs.IMax, enc.IMax},
	}
	for _, w := range writes {
		if err := d.tr.WriteReg(d.bus, d.addr, w.reg, w.value); err != nil {
			return err
		}
	}
	return nil
}

// RunSelfTest drives the built-in self test and reports its verdict.
// A failed test is a valid false result; only transport errors are errors.
// The prior mode is restored best effort.
func (d *Device) RunSelfTest() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.requireReady("da7281.RunSelfTest"); err != nil {
		return false, err
	}

	saved := d.mode
	if d.mode != ModeInactive {
		if err := d.setModeLocked(ModeInactive); err != nil {
			return false, err
		}
		d.sleep(modeSettle)
	}

	if err := d.tr.WriteReg(d.bus, d.addr, d.regs.SelftestCfg, selftestTrigger); err != nil {
		return false, err
	}

	// The trigger write and the result read are separate transactions; the
	// bus mutex is free for other devices during the settle.
	d.sleep(selftestSettle)

	result, err := d.tr.ReadReg(d.bus, d.addr, d.regs.SelftestResult)
	if err != nil {
		return false, err
	}
	passed := result == selftestPass

	if saved != ModeInactive {
		if err := d.setModeLocked(saved); err != nil {
			println("[da7281] self-test: mode restore failed:", err.Error())
		}
	}
	return passed, nil
}

// ReadChipID returns the identity register value.
func (d *Device) ReadChipID() (uint8, error) {
	return d.tr.ReadReg(d.bus, d.addr, d.regs.ChipID)
}

// ReadChipRev returns the silicon revision register value.
func (d *Device) ReadChipRev() (uint8, error) {
	return d.tr.ReadReg(d.bus, d.addr, d.regs.ChipRev)
}

func (d *Device) requireReady(op string) error {
	if d.state != stateReady {
		return &errcode.E{C: errcode.NotInitialized, Op: op}
	}
	return nil
}
