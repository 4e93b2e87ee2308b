package uow

import (
	"context"

	"github.com/jackc/pgx/v5"

	postgres "github.com/ostrenko/cinebook/internal/repository/postgres"
)

// AfterCommit is a function that runs after a successful transaction commit.
// Services use it to publish showtime-changed events and bump metrics only
// once the claimed seats or schedule edits are durable.
type AfterCommit func(ctx context.Context)

// UoW runs a multi-step write — a seat-claim batch, a showtime create with
// its grid, a guarded delete — as one transaction.
type UoW struct {
	store *postgres.Store
}

func NewUoW(store *postgres.Store) *UoW {
	return &UoW{store: store}
}

// maxTxAttempts bounds serialization-failure retries. Transactions run
// serializable by default, so two bookings touching the same showtime can
// abort with 40001 even though the seat-level conditional update decides
// the actual winner.
const maxTxAttempts = 3

// Do runs fn inside the transaction. After a successful commit,
// it executes all after-commit hooks.
func (u *UoW) Do(
	ctx context.Context,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	return u.DoWithOpts(ctx, nil, fn)
}

// DoWithOpts runs fn inside the transaction with the given options,
// retrying the whole closure on serialization failures and deadlocks up
// to maxTxAttempts. After a successful commit, it executes all
// after-commit hooks; hooks queued by an aborted attempt are discarded.
func (u *UoW) DoWithOpts(
	ctx context.Context,
	opts *pgx.TxOptions,
	fn func(ctx context.Context, tx postgres.DB, after func(AfterCommit)) error,
) error {
	var hooks []AfterCommit

	for attempt := 1; ; attempt++ {
		hooks = hooks[:0]

		err := u.store.RunTx(ctx, opts, func(ctx context.Context, tx postgres.DB) error {
			return fn(ctx, tx, func(h AfterCommit) {
				hooks = append(hooks, h)
			})
		})
		if err == nil {
			break
		}
		if attempt >= maxTxAttempts || !postgres.IsRetryable(err) {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
	}

	for _, h := range hooks {
		h(ctx)
	}

	return nil
}
