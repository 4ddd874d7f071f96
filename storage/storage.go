package storage

import (
	"context"
	"errors"

	"onyxtaxi/pkg/models"
)

// ErrNotFound is returned when a lookup, delete, or update targets an
// identifier with no matching row.
var ErrNotFound = errors.New("record not found")

type IStorage interface {
	Driver() IDriverStorage
	Client() IClientStorage
	Order() IOrderStorage

	// WithinTx runs fn against a transactional view of the storage. A nil
	// return commits, any error rolls back, and the underlying session is
	// released either way. Nesting is not supported; one HTTP request maps
	// to exactly one call.
	WithinTx(ctx context.Context, fn func(IStorage) error) error

	Close()
}

type IDriverStorage interface {
	Create(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	// DeleteByID re-points orders referencing the driver to the unassigned
	// placeholder and returns the record as it existed before deletion.
	DeleteByID(ctx context.Context, id int64) (*models.Driver, error)
}

type IClientStorage interface {
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	DeleteByID(ctx context.Context, id int64) (*models.Client, error)
}

type IOrderStorage interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	// Update overwrites every mutable field of the order and returns the
	// post-update state. Orders are never deleted.
	Update(ctx context.Context, id int64, order *models.Order) (*models.Order, error)
}
