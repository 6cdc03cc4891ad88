// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import "fmt"

// NotInitializedError is returned when an operation is attempted on a Dev
// that was never opened or has been closed.
type NotInitializedError struct {
	Op string
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("ds3231: %s: device is not initialized", e.Op)
}

// ConnectionError is returned when no bus could be opened for the device.
type ConnectionError struct {
	Bus string
	Err error
}

func (e *ConnectionError) Error() string {
	name := e.Bus
	if name == "" {
		name = "default bus"
	}
	return fmt.Sprintf("ds3231: can't connect on %s: %v", name, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a date-time string can't be parsed.
type ParseError struct {
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ds3231: invalid date-time %q: %v", e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidTimeError is returned when the time registers do not hold a valid
// calendar date and time. Raw is the content of registers Seconds to Year.
type InvalidTimeError struct {
	Raw [7]byte
}

func (e *InvalidTimeError) Error() string {
	return fmt.Sprintf("ds3231: registers do not hold a valid time: % x", e.Raw[:])
}

// TransferError is returned when a bus transaction failed.
type TransferError struct {
	Op  string
	Err error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("ds3231: %s: %v", e.Op, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
