package app

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/piiguard/internal/transform"
)

// PseudonymizeAll replaces name and email of every row with synthetic values.
func (a *App) PseudonymizeAll(ctx context.Context) (transform.Report, error) {
	rep, err := a.driver.Run(ctx, CmdPseudonymize, a.users(), transform.Pseudonymize(a.gen))
	a.printReport("pseudonymized", rep)
	if err != nil {
		return rep, err
	}
	fmt.Fprintln(a.out, "All users anonymized (names and emails replaced with synthetic values).")
	return rep, nil
}

// EncryptAllEmails replaces every stored email with a token. Emails that are
// already tokens are encrypted again and end up nested.
func (a *App) EncryptAllEmails(ctx context.Context) (transform.Report, error) {
	rep, err := a.driver.Run(ctx, CmdEncrypt, a.users(), transform.EncryptEmail(a.codec))
	a.printReport("encrypted", rep)
	if err != nil {
		return rep, err
	}
	fmt.Fprintln(a.out, "All emails encrypted in database.")
	return rep, nil
}

func (a *App) printReport(verb string, rep transform.Report) {
	if rep.Failed == 0 && rep.Skipped == 0 {
		return
	}
	fmt.Fprintf(a.out, "%d of %d records %s, %d failed, %d skipped (run %s)\n",
		rep.Updated, rep.Visited+rep.Skipped, verb, rep.Failed, rep.Skipped, rep.RunID)
}
