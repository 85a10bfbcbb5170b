// Package transform runs a per-record function over every user row and
// writes each changed row back.
//
// Both data-protection passes go through Driver.Run: pseudonymization
// (name and email replaced) and email encryption (email replaced by a token).
// The documented order is pseudonymize first, then encrypt.
package transform

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hengadev/errsx"

	"github.com/dmitrijs2005/piiguard/internal/logging"
	"github.com/dmitrijs2005/piiguard/internal/models"
	"github.com/dmitrijs2005/piiguard/internal/repositories/users"
)

// Func mutates one record in place. It must not touch u.ID.
type Func func(ctx context.Context, u *models.User) error

// Report summarizes one pass.
type Report struct {
	RunID   string
	Visited int // records handed to the transform function
	Updated int // records written back
	Failed  int
	Skipped int // records never visited because the pass aborted
}

func (r Report) String() string {
	return fmt.Sprintf("run %s: visited=%d updated=%d failed=%d skipped=%d",
		r.RunID, r.Visited, r.Updated, r.Failed, r.Skipped)
}

type Driver struct {
	policy Policy
	logger logging.Logger
}

func NewDriver(policy Policy, logger logging.Logger) *Driver {
	return &Driver{policy: policy, logger: logger}
}

func (d *Driver) Policy() Policy {
	return d.policy
}

// Run loads every record once, applies fn to each and persists it with
// repo.Update, one record at a time.
//
// The record set is fixed when Run starts: rows inserted while it runs are
// not visited, and each loaded row is visited at most once. What happens on
// a failing record depends on the driver's Policy. With ContinueOnError the
// returned error is an errsx.Map keyed "record <id>". With AbortOnError it
// names the failing record and the number of skipped records.
//
// A cancelled ctx stops the pass like AbortOnError would.
func (d *Driver) Run(ctx context.Context, name string, repo users.Repository, fn Func) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	log := d.logger.With("transform", name, "run_id", report.RunID, "policy", d.policy.String())

	all, err := repo.GetAll(ctx)
	if err != nil {
		return report, fmt.Errorf("load records: %w", err)
	}
	log.Info(ctx, "transform started", "records", len(all))

	var errs errsx.Map

	for i := range all {
		u := &all[i]

		if err := ctx.Err(); err != nil {
			report.Skipped = len(all) - i
			log.Warn(ctx, "transform cancelled", "skipped", report.Skipped)
			return report, fmt.Errorf("%s cancelled, %d records skipped: %w", name, report.Skipped, err)
		}

		report.Visited++
		err := d.apply(ctx, repo, fn, u)
		if err == nil {
			report.Updated++
			log.Debug(ctx, "record updated", "id", u.ID)
			continue
		}

		report.Failed++
		log.Warn(ctx, "record failed", "id", u.ID, "error", err)

		if d.policy == AbortOnError {
			report.Skipped = len(all) - i - 1
			log.Error(ctx, "transform aborted", "id", u.ID, "skipped", report.Skipped)
			return report, fmt.Errorf("%s aborted at record %d, %d records skipped: %w", name, u.ID, report.Skipped, err)
		}
		errs.Set(fmt.Sprintf("record %d", u.ID), err)
	}

	log.Info(ctx, "transform finished", "updated", report.Updated, "failed", report.Failed)
	return report, errs.AsError()
}

func (d *Driver) apply(ctx context.Context, repo users.Repository, fn Func, u *models.User) error {
	id := u.ID
	if err := fn(ctx, u); err != nil {
		return err
	}
	u.ID = id
	return repo.Update(ctx, u)
}
