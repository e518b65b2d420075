package masterdata

import (
	"context"
	"strings"

	masterdataerrors "go-hrms/internal/masterdata/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Resolver finds or creates a master record for a free-text value coming
// out of an uploaded row and returns its id.
//
// The find-then-insert is deliberately non-atomic: bulk ingestion is a
// single-writer workflow, and two concurrent uploads racing on the same new
// value can create duplicate master rows. That limitation is accepted here
// rather than papered over with a uniqueness constraint that would change
// insert behavior.
type Resolver struct {
	repo   Repository
	logger *zap.Logger
}

func NewResolver(repo Repository, logger ...*zap.Logger) *Resolver {
	l := zap.L().Named("masterdata.resolver")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("masterdata.resolver")
	}
	return &Resolver{repo: repo, logger: l}
}

// Resolve returns the id of the master row in table whose display value
// matches value, creating the row on first reference. A blank value is not
// an error; it resolves to nil (missing reference).
func (r *Resolver) Resolve(ctx context.Context, table, value string) (*uuid.UUID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	column, ok := Tables[table]
	if !ok {
		return nil, masterdataerrors.ErrUnknownTable
	}

	id, err := r.repo.FindIDByValue(ctx, table, column, value)
	if err != nil {
		return nil, err
	}
	if id != nil {
		return id, nil
	}

	created, err := r.repo.Insert(ctx, table, column, value)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("master record created",
		zap.String("table", table),
		zap.String("value", value),
		zap.String("id", created.String()),
	)

	return &created, nil
}
