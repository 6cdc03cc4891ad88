// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

// Register is the address of one of the DS3231 internal registers. The
// register pointer auto-increments after each byte, so a transaction
// starting at Seconds covers the whole time block.
type Register byte

const (
	Seconds       Register = 0x00
	Minutes       Register = 0x01
	Hours         Register = 0x02
	WeekDay       Register = 0x03
	Date          Register = 0x04
	Month         Register = 0x05
	Year          Register = 0x06
	Alarm1Seconds Register = 0x07
	Alarm1Minutes Register = 0x08
	Alarm1Hours   Register = 0x09
	Alarm1DayDate Register = 0x0A
	Alarm2Minutes Register = 0x0B
	Alarm2Hours   Register = 0x0C
	Alarm2DayDate Register = 0x0D
	Control       Register = 0x0E
	ControlStatus Register = 0x0F
	AgingOffset   Register = 0x10
	TempMSB       Register = 0x11
	TempLSB       Register = 0x12
)

const (
	// Number of registers from Seconds to Year.
	timeRegisters = int(Year-Seconds) + 1

	// Oscillator Stop Flag in ControlStatus.
	bitOSF byte = 1 << 7
)
