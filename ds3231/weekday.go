// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import "time"

// The chip only requires the weekday register to count 1 to 7. This driver
// uses 1 for Monday through 7 for Sunday on both the read and write paths.

// ChipWeekday returns the weekday register value for d.
func ChipWeekday(d time.Weekday) byte {
	if d == time.Sunday {
		return 7
	}
	return byte(d)
}

// GoWeekday returns the weekday for a register value. ok is false when raw
// is outside 1 to 7.
func GoWeekday(raw byte) (d time.Weekday, ok bool) {
	if raw < 1 || raw > 7 {
		return 0, false
	}
	return time.Weekday(raw % 7), true
}

// Locale holds the names reported by Dev.WeekDay.
type Locale struct {
	// Days is indexed by register value - 1, Monday first.
	Days [7]string
	// Invalid is reported for register values outside 1 to 7.
	Invalid string
}

// Name returns the name of the weekday register value raw.
func (l *Locale) Name(raw byte) string {
	if raw < 1 || raw > 7 {
		return l.Invalid
	}
	return l.Days[raw-1]
}

// EnglishLocale is the default Locale.
var EnglishLocale = Locale{
	Days:    [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	Invalid: "Invalid",
}

// RussianLocale names the weekdays in Russian.
var RussianLocale = Locale{
	Days:    [7]string{"Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье"},
	Invalid: "Ошибка.",
}
