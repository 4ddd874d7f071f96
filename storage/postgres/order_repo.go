package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

type orderRepo struct {
	db  DB
	log logger.ILogger
}

func NewOrderRepo(db DB, log logger.ILogger) storage.IOrderStorage {
	return &orderRepo{db: db, log: log}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	var created models.Order
	query := `
		INSERT INTO orders (address_from, address_to, client_id, driver_id, date_created, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, address_from, address_to, client_id, driver_id, date_created, status
	`
	err := r.db.QueryRow(ctx, query,
		order.AddressFrom,
		order.AddressTo,
		order.ClientID,
		order.DriverID,
		order.DateCreated,
		order.Status,
	).Scan(
		&created.ID,
		&created.AddressFrom,
		&created.AddressTo,
		&created.ClientID,
		&created.DriverID,
		&created.DateCreated,
		&created.Status,
	)
	if err != nil {
		r.log.Error("failed to create order", logger.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	query := `
		SELECT id, address_from, address_to, client_id, driver_id, date_created, status
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.AddressFrom,
		&order.AddressTo,
		&order.ClientID,
		&order.DriverID,
		&order.DateCreated,
		&order.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get order by id", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return &order, nil
}

// Update is a full-document overwrite: every field of the creation contract
// is replaced, never a partial patch.
func (r *orderRepo) Update(ctx context.Context, id int64, order *models.Order) (*models.Order, error) {
	var updated models.Order
	query := `
		UPDATE orders
		SET address_from = $1, address_to = $2, client_id = $3, driver_id = $4, date_created = $5, status = $6
		WHERE id = $7
		RETURNING id, address_from, address_to, client_id, driver_id, date_created, status
	`
	err := r.db.QueryRow(ctx, query,
		order.AddressFrom,
		order.AddressTo,
		order.ClientID,
		order.DriverID,
		order.DateCreated,
		order.Status,
		id,
	).Scan(
		&updated.ID,
		&updated.AddressFrom,
		&updated.AddressTo,
		&updated.ClientID,
		&updated.DriverID,
		&updated.DateCreated,
		&updated.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to update order", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return &updated, nil
}
