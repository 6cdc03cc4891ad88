// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package ds3231 controls a Maxim DS3231 real-time clock over I²C.
//
// The DS3231 keeps seconds, minutes, hours, weekday, date, month and a
// two-digit year in BCD registers, and carries a temperature sensor used for
// its crystal compensation. The driver reads and writes the time, the weekday
// and the aging offset, and exposes the temperature as a physic.SenseEnv.
// Years are stored as 00-99 and interpreted as 2000-2099.
//
// Alarms, the square-wave output and the oscillator control bits are not
// supported.
//
// Range: -40°C - 85°C
//
// Resolution: 0.25°C
//
// For detailed information, refer to the [datasheet].
//
// [datasheet]: https://www.analog.com/media/en/technical-documentation/data-sheets/DS3231.pdf
package ds3231
