// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package ds3231

import "fmt"

// TransferStatus is the outcome of a write transaction.
type TransferStatus byte

const (
	// FullTransfer means every byte was written.
	FullTransfer TransferStatus = iota
	// PartialTransfer means the bus accepted fewer bytes than requested.
	PartialTransfer
	// TransferFailed means the transaction failed. TransferResult.Err holds
	// the cause.
	TransferFailed
)

func (s TransferStatus) String() string {
	switch s {
	case FullTransfer:
		return "FullTransfer"
	case PartialTransfer:
		return "PartialTransfer"
	case TransferFailed:
		return "TransferFailed"
	default:
		return fmt.Sprintf("TransferStatus(%d)", byte(s))
	}
}

// TransferResult describes a write transaction. Write operations report bus
// failures here instead of returning them as an error.
type TransferResult struct {
	Status TransferStatus
	// BytesTransferred counts the bytes acknowledged by the device, including
	// the register address.
	BytesTransferred int
	// Err is a *TransferError when Status is TransferFailed.
	Err error
}

// OK reports whether the whole frame was written.
func (r TransferResult) OK() bool {
	return r.Status == FullTransfer
}

func (r TransferResult) String() string {
	if r.Err != nil {
		return fmt.Sprintf("%s(%d): %v", r.Status, r.BytesTransferred, r.Err)
	}
	return fmt.Sprintf("%s(%d)", r.Status, r.BytesTransferred)
}

// newTransferResult classifies the result of writing want bytes.
func newTransferResult(op string, want, n int, err error) TransferResult {
	switch {
	case err != nil:
		return TransferResult{Status: TransferFailed, BytesTransferred: n, Err: &TransferError{Op: op, Err: err}}
	case n < want:
		return TransferResult{Status: PartialTransfer, BytesTransferred: n}
	default:
		return TransferResult{Status: FullTransfer, BytesTransferred: n}
	}
}
