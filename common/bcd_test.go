// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import "testing"

func TestDecimalToBCD(t *testing.T) {
	var tests = []struct {
		n      byte
		result byte
	}{
		{n: 0, result: 0x00},
		{n: 7, result: 0x07},
		{n: 10, result: 0x10},
		{n: 45, result: 0x45},
		{n: 59, result: 0x59},
		{n: 99, result: 0x99},
		// Out of range values truncate.
		{n: 100, result: 0xa0},
		{n: 255, result: 0x95},
	}
	for _, test := range tests {
		res := DecimalToBCD(test.n)
		if res != test.result {
			t.Errorf("DecimalToBCD(%d)!=0x%02x received 0x%02x", test.n, test.result, res)
		}
	}
}

func TestBCDToDecimal(t *testing.T) {
	var tests = []struct {
		b      byte
		result byte
	}{
		{b: 0x00, result: 0},
		{b: 0x09, result: 9},
		{b: 0x24, result: 24},
		{b: 0x59, result: 59},
		{b: 0x99, result: 99},
		// Malformed nibbles decode without error.
		{b: 0x1f, result: 25},
		{b: 0xff, result: 165},
	}
	for _, test := range tests {
		res := BCDToDecimal(test.b)
		if res != test.result {
			t.Errorf("BCDToDecimal(0x%02x)!=%d received %d", test.b, test.result, res)
		}
	}
}

func TestBCDRoundTrip(t *testing.T) {
	for n := byte(0); n <= 99; n++ {
		if got := BCDToDecimal(DecimalToBCD(n)); got != n {
			t.Errorf("BCDToDecimal(DecimalToBCD(%d))=%d", n, got)
		}
	}
	for hi := byte(0); hi <= 9; hi++ {
		for lo := byte(0); lo <= 9; lo++ {
			b := hi<<4 | lo
			if got := DecimalToBCD(BCDToDecimal(b)); got != b {
				t.Errorf("DecimalToBCD(BCDToDecimal(0x%02x))=0x%02x", b, got)
			}
		}
	}
}
