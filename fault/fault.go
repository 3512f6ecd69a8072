// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type BalanceError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LimitError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrBadOrigin               = PermissionError("origin is not a signed account")
	ErrBalanceOverflow         = BalanceError("balance overflow")
	ErrBidPriceTooLow          = InvalidError("bid price is lower than the asking price")
	ErrBuyerIsKittyOwner       = InvalidError("buyer is the kitty owner")
	ErrCannotDecodeAccount     = InvalidError("cannot decode account")
	ErrChecksumMismatch        = InvalidError("checksum mismatch")
	ErrConfigurationNotTable   = InvalidError("configuration did not return a table")
	ErrDatabaseIsReadOnly      = ProcessError("database is read only")
	ErrDatabaseVersion         = InvalidError("database version is newer than supported")
	ErrExceedMaxKittyOwned     = LimitError("exceeded maximum number of kitties owned")
	ErrExistentialDeposit      = BalanceError("value is below the existential deposit")
	ErrInsufficientBalance     = BalanceError("insufficient balance")
	ErrInvalidBlockNumber      = InvalidError("invalid block number")
	ErrInvalidCall             = InvalidError("invalid call")
	ErrInvalidChain            = InvalidError("invalid chain")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidCursor           = InvalidError("invalid cursor")
	ErrInvalidDNA              = InvalidError("invalid dna")
	ErrInvalidDigest           = InvalidError("invalid digest")
	ErrInvalidGender           = InvalidError("invalid gender")
	ErrInvalidIndexWidth       = InvalidError("invalid kitty index width")
	ErrInvalidKeyLength        = InvalidError("invalid key length")
	ErrInvalidKeyType          = InvalidError("invalid key type")
	ErrInvalidMaximumOwned     = InvalidError("invalid maximum kitties owned")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeepAlive               = BalanceError("transfer would kill the account")
	ErrKittyExists             = ExistsError("kitty already exists")
	ErrKittyIndexOverflow      = LimitError("kitty index overflow")
	ErrKittyNotForSale         = InvalidError("kitty is not for sale")
	ErrKittyNotFound           = NotFoundError("kitty not found")
	ErrNotInitialised          = NotFoundError("not initialised")
	ErrNotKittyOwner           = PermissionError("not the kitty owner")
	ErrOwnershipInconsistent   = RecordError("ownership index does not match kitty owners")
	ErrTransactionAlreadyInUse = ProcessError("transaction already in use")
	ErrTransferToSelf          = InvalidError("cannot transfer a kitty to its owner")
	ErrUnpackedRecordTruncated = RecordError("unpacked record is truncated")
	ErrUnknownRecordTag        = RecordError("unknown record tag")
	ErrWrongNetworkForAccount  = InvalidError("wrong network for account")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e BalanceError) Error() string    { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LimitError) Error() string      { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrBalance(e error) bool    { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLimit(e error) bool      { _, ok := e.(LimitError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
