// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised   = ExistsError("already initialised")
	HeightBoundExceeded  = RecordError("height exceeds balance bound")
	InvalidCount         = InvalidError("invalid count")
	InvalidKeySpace      = InvalidError("invalid key space")
	InvalidRate          = InvalidError("invalid rate")
	InvalidStructPointer = InvalidError("invalid struct pointer")
	KeySetMismatch       = RecordError("key set mismatch")
	KeysOutOfOrder       = RecordError("keys out of order")
	MissingArguments     = LengthError("missing arguments")
	NotInitialised       = NotFoundError("not initialised")
	RateLimiting         = ProcessError("rate limiting")
	UnbalancedNode       = RecordError("unbalanced node")
	UnsupportedFormat    = InvalidError("unsupported configuration format")
	WrongNodeCount       = RecordError("wrong node count")
	WrongNodeHeight      = RecordError("wrong node height")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { _, ok := e.(ExistsError); return ok }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { _, ok := e.(InvalidError); return ok }

// IsErrLength - determine the class of an error
func IsErrLength(e error) bool { _, ok := e.(LengthError); return ok }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { _, ok := e.(ProcessError); return ok }

// IsErrRecord - determine the class of an error
func IsErrRecord(e error) bool { _, ok := e.(RecordError); return ok }
