// Package app wires piiguard's components together and implements the
// operator actions behind the CLI commands.
//
// An App is built once per process: New loads (or creates) the key, opens
// the record store and applies the schema. The actions then run against
// that single store and codec:
//
//	init          reset the users table and insert the two reference rows
//	list          print every row as stored
//	pseudonymize  replace names and emails with synthetic values
//	encrypt       replace every email with a token
//	decrypt       print decrypted emails without writing anything back
//	selfcheck     verify every stored email looks encrypted
//	demo          init, list, pseudonymize, encrypt, list (the default)
//
// Operator-facing text goes to the writer passed to New; diagnostics go to
// the logger.
package app
