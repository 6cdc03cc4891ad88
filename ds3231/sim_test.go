// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// simBus emulates the DS3231 register file: a write sets the register
// pointer from its first byte and stores the rest, reads continue from the
// pointer. The pointer wraps after TempLSB.
type simBus struct {
	regs     [TempLSB + 1]byte
	ptr      byte
	speed    physic.Frequency
	speedErr error
	txCount  int
}

func (s *simBus) String() string {
	return "sim"
}

func (s *simBus) Tx(addr uint16, w, r []byte) error {
	if addr != DefaultAddress {
		return fmt.Errorf("sim: no device at %#x", addr)
	}
	s.txCount++
	if len(w) > 0 {
		if w[0] > byte(TempLSB) {
			return errors.New("sim: invalid register")
		}
		s.ptr = w[0]
		for _, b := range w[1:] {
			s.regs[s.ptr] = b
			s.advance()
		}
	}
	for i := range r {
		r[i] = s.regs[s.ptr]
		s.advance()
	}
	return nil
}

func (s *simBus) advance() {
	s.ptr = (s.ptr + 1) % byte(len(s.regs))
}

func (s *simBus) SetSpeed(f physic.Frequency) error {
	if s.speedErr != nil {
		return s.speedErr
	}
	s.speed = f
	return nil
}

var _ i2c.Bus = &simBus{}
