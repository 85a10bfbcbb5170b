package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/piiguard/internal/common"
)

// DecryptedEmail is the outcome of decrypting one stored email.
type DecryptedEmail struct {
	ID          int64
	Stored      string
	Plain       string
	EncryptedAt time.Time
	Err         error // wraps common.ErrDecryption when the value is not a valid token
}

// DecryptAll decrypts every stored email without writing anything back.
// Per-record decryption failures are reported in the result, not returned;
// the error is only for store failures.
func (a *App) DecryptAll(ctx context.Context) ([]DecryptedEmail, error) {
	all, err := a.users().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]DecryptedEmail, 0, len(all))
	for _, u := range all {
		d := DecryptedEmail{ID: u.ID, Stored: u.Email}
		d.Plain, d.EncryptedAt, d.Err = a.codec.DecryptWithTime(u.Email)
		if d.Err != nil {
			a.logger.Debug(ctx, "email not decryptable", "id", u.ID, "error", d.Err)
		}
		out = append(out, d)
	}
	return out, nil
}

// DecryptAndDisplay prints the decrypted email of every row. Rows that do
// not hold a valid token are printed with the reason and the stored value.
func (a *App) DecryptAndDisplay(ctx context.Context) error {
	res, err := a.DecryptAll(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\n--- Decrypted emails (for test only) ---")
	for _, d := range res {
		if d.Err != nil {
			fmt.Fprintf(a.out, "ID %d: could not decrypt (%s) -> stored value: %s\n", d.ID, reason(d.Err), d.Stored)
			continue
		}
		fmt.Fprintf(a.out, "ID %d: %s (encrypted %s)\n", d.ID, d.Plain, d.EncryptedAt.Format(time.RFC3339))
	}
	fmt.Fprintln(a.out, "--- End ---")
	fmt.Fprintln(a.out)
	return nil
}

func reason(err error) string {
	msg := err.Error()
	if errors.Is(err, common.ErrDecryption) {
		msg = strings.TrimPrefix(msg, common.ErrDecryption.Error()+": ")
	}
	return msg
}
