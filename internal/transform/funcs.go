package transform

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/piiguard/internal/models"
	"github.com/dmitrijs2005/piiguard/internal/pseudo"
)

// PersonGenerator is satisfied by *pseudo.Generator.
type PersonGenerator interface {
	GeneratePerson() pseudo.Person
}

// Encrypter is satisfied by *cryptox.Codec.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
}

// Pseudonymize replaces name and email with a synthetic person.
func Pseudonymize(gen PersonGenerator) Func {
	return func(_ context.Context, u *models.User) error {
		p := gen.GeneratePerson()
		u.Name = p.Name
		u.Email = p.Email
		return nil
	}
}

// EncryptEmail replaces the email with a token. It always encrypts, so a
// value that is already a token gets wrapped in another layer.
func EncryptEmail(enc Encrypter) Func {
	return func(_ context.Context, u *models.User) error {
		token, err := enc.Encrypt(u.Email)
		if err != nil {
			return fmt.Errorf("encrypt email: %w", err)
		}
		u.Email = token
		return nil
	}
}
