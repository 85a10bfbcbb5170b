// Package models defines the records piiguard stores and transforms.
package models

// User is a row of the users table.
//
// Name and Email are the mutable fields: pseudonymization replaces both with
// synthetic values and encryption replaces Email with a token. ID never
// changes once assigned by the store.
type User struct {
	ID    int64
	Name  string
	Email string
}
