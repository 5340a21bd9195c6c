// Package i2cbus serializes single-register transactions over shared I2C
// buses. Every physical bus owns one mutex; register operations acquire it
// with a bounded wait so a wedged peer cannot stall callers forever.
//
// The package does not configure pins or clocks itself. A Factory supplies a
// ready drivers.I2C instance per bus id; acquisition happens lazily on first
// use and at most once per bus.
//
// NOTE: drivers.I2C.Tx MUST perform a write followed by a repeated-start read
// when both w and r are provided, without releasing the bus in between.
package i2cbus

import (
	"sync"
	"time"

	"tinygo.org/x/drivers"

	"hapticcode-go/errcode"
)

// MaxBuses bounds the bus id space. Slots are statically allocated so no
// lock-creation race exists on concurrent first use.
const MaxBuses = 4

// DefaultLockTimeout bounds the wait for a bus mutex.
const DefaultLockTimeout = 100 * time.Millisecond

// Factory injects configured I2C instances by bus id. Pin assignment and
// clock setup live behind this interface; ByID returns false when the bus
// was never configured.
type Factory interface {
	ByID(bus uint8) (drivers.I2C, bool)
}

// FactoryFunc adapts an ordinary function to Factory.
type FactoryFunc func(bus uint8) (drivers.I2C, bool)

func (f FactoryFunc) ByID(bus uint8) (drivers.I2C, bool) { return f(bus) }

// slot is the per-bus state: a one-permit semaphore serializing the physical
// bus, plus guarded lazy binding of the I2C instance.
type slot struct {
	sem chan struct{}

	initMu sync.Mutex
	io     drivers.I2C // nil until bound
}

// Registry performs register transactions over up to MaxBuses buses.
// It is safe for concurrent use by multiple goroutines.
type Registry struct {
	factory Factory
	timeout time.Duration
	slots   [MaxBuses]slot
}

// New builds a Registry over the given factory. timeout bounds every bus
// mutex acquisition; zero selects DefaultLockTimeout.
func New(factory Factory, timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultLockTimeout
	}
	r := &Registry{factory: factory, timeout: timeout}
	for i := range r.slots {
		r.slots[i].sem = make(chan struct{}, 1)
	}
	return r
}

// bind returns the bus's I2C instance, asking the factory on first use.
// A factory miss is not sticky: the bus can be configured later and retried.
func (r *Registry) bind(bus uint8) (drivers.I2C, *slot, error) {
	if bus >= MaxBuses {
		return nil, nil, &errcode.E{C: errcode.InvalidArgument, Op: "i2cbus.bind", Msg: "bus id out of range"}
	}
	s := &r.slots[bus]

	s.initMu.Lock()
	defer s.initMu.Unlock()
	if s.io == nil {
		io, ok := r.factory.ByID(bus)
		if !ok || io == nil {
			return nil, nil, &errcode.E{C: errcode.Unconfigured, Op: "i2cbus.bind"}
		}
		s.io = io
	}
	return s.io, s, nil
}

// acquire takes the bus semaphore or gives up after the bounded wait.
func (r *Registry) acquire(s *slot) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-time.After(r.timeout):
		return &errcode.E{C: errcode.Contention, Op: "i2cbus.acquire"}
	}
}

func (r *Registry) release(s *slot) { <-s.sem }

// WriteReg writes one byte to a device register:
// START, addr+W, reg, value, STOP.
func (r *Registry) WriteReg(bus uint8, addr uint16, reg, value uint8) error {
	io, s, err := r.bind(bus)
	if err != nil {
		return err
	}
	if err := r.acquire(s); err != nil {
		return err
	}
	defer r.release(s)
	return writeReg(io, addr, reg, value)
}

// ReadReg reads one byte from a device register:
// START, addr+W, reg, REPEATED START, addr+R, data, STOP.
func (r *Registry) ReadReg(bus uint8, addr uint16, reg uint8) (uint8, error) {
	io, s, err := r.bind(bus)
	if err != nil {
		return 0, err
	}
	if err := r.acquire(s); err != nil {
		return 0, err
	}
	defer r.release(s)
	return readReg(io, addr, reg)
}

// ModifyReg updates the masked bits of a register:
//
//	new = (old &^ mask) | (bits & mask)
//
// Read and write happen under a single mutex acquisition; composing ReadReg
// with WriteReg would reopen the read-modify-write race between two callers
// on the same bus.
func (r *Registry) ModifyReg(bus uint8, addr uint16, reg, mask, bits uint8) error {
	io, s, err := r.bind(bus)
	if err != nil {
		return err
	}
	if err := r.acquire(s); err != nil {
		return err
	}
	defer r.release(s)

	old, err := readReg(io, addr, reg)
	if err != nil {
		return err
	}
	return writeReg(io, addr, reg, (old&^mask)|(bits&mask))
}

// Unlocked primitives. Callers hold the bus semaphore.

func writeReg(io drivers.I2C, addr uint16, reg, value uint8) error {
	w := [2]byte{reg, value}
	if err := io.Tx(addr, w[:], nil); err != nil {
		return &errcode.E{C: errcode.Transport, Op: "i2cbus.write", Err: err}
	}
	return nil
}

func readReg(io drivers.I2C, addr uint16, reg uint8) (uint8, error) {
	w := [1]byte{reg}
	var buf [1]byte
	if err := io.Tx(addr, w[:], buf[:]); err != nil {
		return 0, &errcode.E{C: errcode.Transport, Op: "i2cbus.read", Err: err}
	}
	return buf[0], nil
}
