package out

import (
	"context"

	"calm/internal/modules/streak/domain"
)

// RecordStore persists the streak. Save must write count and date together.
type RecordStore interface {
	Load(ctx context.Context) (domain.Record, error)
	Save(ctx context.Context, record domain.Record) error
}
