package app

import (
	"context"
	"fmt"
)

// List prints every row exactly as stored.
func (a *App) List(ctx context.Context) error {
	all, err := a.users().GetAll(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, "\n--- Current users in DB ---")
	for _, u := range all {
		fmt.Fprintf(a.out, "ID: %d, Name: %s, Email: %s\n", u.ID, u.Name, u.Email)
	}
	fmt.Fprintln(a.out, "--- End of list ---")
	fmt.Fprintln(a.out)
	return nil
}
