// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/GermanBionicSystems/rtc/common"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

const (
	// DefaultAddress is the fixed I²C address of the DS3231.
	DefaultAddress uint16 = 0x68

	// Bus speeds supported by the chip.
	StandardMode physic.Frequency = 100 * physic.KiloHertz
	FastMode     physic.Frequency = 400 * physic.KiloHertz

	// DateTimeLayout is the layout accepted by SetDateTimeString, e.g.
	// "15.03.2024 13:45:30". Day, month and hour may omit the leading zero.
	DateTimeLayout = "2.1.2006 15:04:05"

	_DEGREES_RESOLUTION physic.Temperature = 250 * physic.MilliKelvin

	// The chip converts the temperature every 64 seconds. Polling faster
	// only reads the same value again.
	minSenseInterval = time.Second
)

type devState byte

const (
	stateUnopened devState = iota
	stateOpen
	stateClosed
)

// Opts holds the configuration options for the device.
type Opts struct {
	// Addr is the I²C address. Default is DefaultAddress.
	Addr uint16
	// Speed is applied to the bus when the device is opened. Leave 0 to keep
	// the bus speed unchanged, most Linux I²C adapters can't change it.
	Speed physic.Frequency
	// Location is the time zone the chip's wall clock is kept in. Default is
	// UTC.
	Location *time.Location
	// Locale names the weekdays reported by WeekDay. Default is
	// EnglishLocale.
	Locale *Locale
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	Addr:     DefaultAddress,
	Location: time.UTC,
	Locale:   &EnglishLocale,
}

// Dev is a handle to a DS3231 real-time clock.
//
// The zero value is an unopened device: every operation returns a
// *NotInitializedError until Initialize succeeds.
type Dev struct {
	mu    sync.Mutex
	state devState
	d     *i2c.Dev
	// bus is set when the driver opened the bus itself and must close it.
	bus  i2c.BusCloser
	opts Opts
	now  func() time.Time

	stop chan struct{}
	wg   sync.WaitGroup
}

var hostInit = host.Init

// Open initializes the host, opens the I²C bus by name and returns a device
// using it. An empty name selects the default bus. The bus is closed by
// Dev.Close. The Opts can be nil.
func Open(busName string, opts *Opts) (*Dev, error) {
	d := &Dev{}
	if err := d.Initialize(busName, opts); err != nil {
		return nil, err
	}
	return d, nil
}

// NewI2C returns a device on a bus the caller already opened. Closing the
// device does not close b. The Opts can be nil.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if b == nil {
		return nil, &ConnectionError{Err: errors.New("nil bus")}
	}
	d := &Dev{}
	if err := d.attach(b, opts); err != nil {
		return nil, &ConnectionError{Bus: b.String(), Err: err}
	}
	return d, nil
}

// Initialize opens the I²C bus by name, an empty name selects the default
// bus, and binds the device to it. It must succeed before any other
// operation. It fails with a *ConnectionError when the host or the bus can't
// be opened.
func (d *Dev) Initialize(busName string, opts *Opts) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != stateUnopened {
		return errors.New("ds3231: device already initialized")
	}
	if _, err := hostInit(); err != nil {
		return &ConnectionError{Bus: busName, Err: err}
	}
	b, err := i2creg.Open(busName)
	if err != nil {
		return &ConnectionError{Bus: busName, Err: err}
	}
	if err := d.attach(b, opts); err != nil {
		return &ConnectionError{Bus: busName, Err: errors.Join(err, b.Close())}
	}
	d.bus = b
	return nil
}

func (d *Dev) attach(b i2c.Bus, opts *Opts) error {
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.Addr == 0 {
		o.Addr = DefaultAddress
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.Locale == nil {
		o.Locale = &EnglishLocale
	}
	if o.Speed != 0 {
		if err := b.SetSpeed(o.Speed); err != nil {
			return err
		}
	}
	if d.now == nil {
		d.now = time.Now
	}
	d.d = &i2c.Dev{Bus: b, Addr: o.Addr}
	d.opts = o
	d.state = stateOpen
	return nil
}

// handle returns the bus device. The caller must hold d.mu.
func (d *Dev) handle(op string) (*i2c.Dev, error) {
	if d.state != stateOpen {
		return nil, &NotInitializedError{Op: op}
	}
	return d.d, nil
}

// Temperature returns the last temperature converted by the chip, with a
// resolution of 0.25°C.
func (d *Dev) Temperature() (physic.Temperature, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readTemperature()
}

func (d *Dev) readTemperature() (physic.Temperature, error) {
	dev, err := d.handle("read temperature")
	if err != nil {
		return 0, err
	}
	if err := dev.Tx([]byte{byte(TempMSB)}, nil); err != nil {
		return 0, &TransferError{Op: "select temperature register", Err: err}
	}
	r := make([]byte, 2)
	if err := dev.Tx(nil, r); err != nil {
		return 0, &TransferError{Op: "read temperature", Err: err}
	}
	return countToTemperature(r[0], r[1]), nil
}

// countToTemperature decodes the temperature registers. msb is the signed
// integer part, the top two bits of lsb count quarter degrees.
func countToTemperature(msb, lsb byte) physic.Temperature {
	quarters := int64(int8(msb))*4 + int64(lsb>>6)
	return physic.ZeroCelsius + physic.Temperature(quarters)*_DEGREES_RESOLUTION
}

// DateTime reads the wall clock. The seven time registers are read in one
// burst so the result is coherent. The weekday register is not used.
//
// A *InvalidTimeError is returned when the registers do not form a valid date
// and time, e.g. the 31st of a 30 day month.
func (d *Dev) DateTime() (time.Time, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dev, err := d.handle("read time")
	if err != nil {
		return time.Time{}, err
	}
	if err := dev.Tx([]byte{byte(Seconds)}, nil); err != nil {
		return time.Time{}, &TransferError{Op: "select time registers", Err: err}
	}
	var raw [timeRegisters]byte
	if err := dev.Tx(nil, raw[:]); err != nil {
		return time.Time{}, &TransferError{Op: "read time", Err: err}
	}
	return decodeDateTime(raw, d.opts.Location)
}

func decodeDateTime(raw [timeRegisters]byte, loc *time.Location) (time.Time, error) {
	sec := int(common.BCDToDecimal(raw[0]))
	minute := int(common.BCDToDecimal(raw[1]))
	hour := int(common.BCDToDecimal(raw[2]))
	day := int(common.BCDToDecimal(raw[4]))
	month := int(common.BCDToDecimal(raw[5]))
	year := int(common.BCDToDecimal(raw[6]))

	if sec > 59 || minute > 59 || hour > 23 || year > 99 ||
		month < 1 || month > 12 ||
		day < 1 || day > daysIn(time.Month(month), 2000+year) {
		return time.Time{}, &InvalidTimeError{Raw: raw}
	}
	return time.Date(2000+year, time.Month(month), day, hour, minute, sec, 0, loc), nil
}

func daysIn(m time.Month, year int) int {
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekDay returns the name of the weekday register in the configured Locale.
// A register value outside 1 to 7 returns Locale.Invalid, not an error.
func (d *Dev) WeekDay() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	raw, err := d.readRegister("read weekday", WeekDay)
	if err != nil {
		return "", err
	}
	return d.opts.Locale.Name(raw), nil
}

// RawWeekDay returns the weekday register, 1 for Monday to 7 for Sunday when
// set by this driver. Use GoWeekday to convert it.
func (d *Dev) RawWeekDay() (byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.readRegister("read weekday", WeekDay)
}

// readRegister reads one register in a single write-then-read transaction.
func (d *Dev) readRegister(op string, reg Register) (byte, error) {
	dev, err := d.handle(op)
	if err != nil {
		return 0, err
	}
	r := make([]byte, 1)
	if err := dev.Tx([]byte{byte(reg)}, r); err != nil {
		return 0, &TransferError{Op: op, Err: err}
	}
	return r[0], nil
}

// SetDateTimeNow sets the chip to the host's current time.
func (d *Dev) SetDateTimeNow() (TransferResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.handle("set time"); err != nil {
		return TransferResult{Status: TransferFailed}, err
	}
	return d.writeDateTime(d.now())
}

// SetDateTimeString parses s with DateTimeLayout in the configured Location
// and sets the chip to it. A *ParseError is returned for malformed input and
// nothing is written.
func (d *Dev) SetDateTimeString(s string) (TransferResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.handle("set time"); err != nil {
		return TransferResult{Status: TransferFailed}, err
	}
	t, err := time.ParseInLocation(DateTimeLayout, strings.TrimSpace(s), d.opts.Location)
	if err != nil {
		return TransferResult{Status: TransferFailed}, &ParseError{Value: s, Err: err}
	}
	return d.writeDateTime(t)
}

// SetDateTime sets the chip to t, converted to the configured Location. All
// seven time registers are written in one transaction.
//
// The bus outcome is reported in the TransferResult. The error is only set
// when the device is not initialized.
func (d *Dev) SetDateTime(t time.Time) (TransferResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.handle("set time"); err != nil {
		return TransferResult{Status: TransferFailed}, err
	}
	return d.writeDateTime(t)
}

func (d *Dev) writeDateTime(t time.Time) (TransferResult, error) {
	frame := EncodeDateTime(t.In(d.opts.Location))
	n, err := d.d.Write(frame[:])
	return newTransferResult("set time", len(frame), n, err), nil
}

// EncodeDateTime returns the frame written by SetDateTime: the Seconds
// register address followed by the BCD encoded second, minute, hour,
// weekday, day, month and year within the century of t, as t reads in its
// own location.
func EncodeDateTime(t time.Time) [timeRegisters + 1]byte {
	return [timeRegisters + 1]byte{
		byte(Seconds),
		common.DecimalToBCD(byte(t.Second())),
		common.DecimalToBCD(byte(t.Minute())),
		common.DecimalToBCD(byte(t.Hour())),
		common.DecimalToBCD(ChipWeekday(t.Weekday())),
		common.DecimalToBCD(byte(t.Day())),
		common.DecimalToBCD(byte(t.Month())),
		common.DecimalToBCD(byte(t.Year() % 100)),
	}
}

// AgingOffset returns the aging trim register. Each step adjusts the
// oscillator by roughly 0.1ppm, positive values slow it down.
func (d *Dev) AgingOffset() (int8, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readRegister("read aging offset", AgingOffset)
	return int8(v), err
}

// SetAgingOffset writes the aging trim register. The new value takes effect
// on the next temperature conversion.
func (d *Dev) SetAgingOffset(offset int8) (TransferResult, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dev, err := d.handle("set aging offset")
	if err != nil {
		return TransferResult{Status: TransferFailed}, err
	}
	w := []byte{byte(AgingOffset), byte(offset)}
	n, err := dev.Write(w)
	return newTransferResult("set aging offset", len(w), n, err), nil
}

// OscillatorStopped reports whether the oscillator stopped at some point,
// typically after a power loss without battery. The time is then not to be
// trusted. Setting the time does not clear the flag.
func (d *Dev) OscillatorStopped() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.readRegister("read status", ControlStatus)
	return v&bitOSF != 0, err
}

// DeviceID returns the bus and address the device is bound to.
func (d *Dev) DeviceID() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dev, err := d.handle("device id")
	if err != nil {
		return "", err
	}
	return dev.String(), nil
}

// Sense reads the temperature into env. Implements physic.SenseEnv.
func (d *Dev) Sense(env *physic.Env) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, err := d.readTemperature()
	if err == nil {
		env.Temperature = t
	}
	return err
}

// SenseContinuous reads the temperature every interval and writes it to the
// returned channel. Implements physic.SenseEnv. Call Halt to stop.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < minSenseInterval {
		return nil, fmt.Errorf("ds3231: invalid interval %s, minimum %s", interval, minSenseInterval)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, err := d.handle("sense continuous"); err != nil {
		return nil, err
	}
	if d.stop != nil {
		return nil, errors.New("ds3231: already sensing continuously")
	}
	stop := make(chan struct{})
	d.stop = stop
	sensing := make(chan physic.Env)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer close(sensing)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				e := physic.Env{}
				if err := d.Sense(&e); err != nil {
					log.Print(err)
					continue
				}
				select {
				case sensing <- e:
				case <-stop:
					return
				}
			}
		}
	}()
	return sensing, nil
}

// Precision implements physic.SenseEnv.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = _DEGREES_RESOLUTION
	env.Pressure = 0
	env.Humidity = 0
}

// Halt stops a SenseContinuous operation. Implements conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop := d.stop
	d.stop = nil
	d.mu.Unlock()
	if stop != nil {
		close(stop)
		d.wg.Wait()
	}
	return nil
}

// Close halts the device and releases the bus if the driver opened it.
// Calling Close again is a no-op.
func (d *Dev) Close() error {
	if err := d.Halt(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != stateOpen {
		return nil
	}
	d.state = stateClosed
	d.d = nil
	if b := d.bus; b != nil {
		d.bus = nil
		return b.Close()
	}
	return nil
}

func (d *Dev) String() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != stateOpen {
		return "ds3231"
	}
	return fmt.Sprintf("ds3231: %s", d.d.String())
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
