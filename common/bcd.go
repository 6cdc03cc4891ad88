// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, the BCD conversion used by real-time clocks.
package common

// DecimalToBCD encodes n as packed binary-coded decimal, e.g. 45 becomes
// 0x45. Only 0 to 99 fit in one byte. Larger values are not rejected: the
// tens digit overflows the high nibble and the result is truncated.
func DecimalToBCD(n byte) byte {
	return ((n / 10) << 4) | (n % 10)
}

// BCDToDecimal decodes a packed BCD byte, e.g. 0x45 becomes 45.
//
// Nibbles are not validated. A nibble above 9 still contributes its binary
// value, so 0x1F decodes to 25.
func BCDToDecimal(b byte) byte {
	return (b>>4)*10 + (b & 0x0F)
}
