// Package common defines shared sentinel errors and small helpers used across
// piiguard packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Key lifecycle errors. Both are fatal at startup.
	ErrKeyRead  = errors.New("key read error")
	ErrKeyWrite = errors.New("key write error")

	// Token verification errors, recoverable per record.
	ErrDecryption = errors.New("decryption error")

	// Record store errors.
	ErrStore      = errors.New("store error")
	ErrorNotFound = errors.New("not found")
)
