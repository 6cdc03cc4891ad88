// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rtc is a container for real-time clock drivers built on periph.io.
//
// See package ds3231 for the Maxim DS3231 driver and package common for the
// BCD helpers shared by RTC drivers.
package rtc
