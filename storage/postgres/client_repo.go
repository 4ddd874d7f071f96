package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

type clientRepo struct {
	db  DB
	log logger.ILogger
}

func NewClientRepo(db DB, log logger.ILogger) storage.IClientStorage {
	return &clientRepo{db: db, log: log}
}

func (r *clientRepo) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	var created models.Client
	query := `
		INSERT INTO clients (name, is_vip)
		VALUES ($1, $2)
		RETURNING id, name, is_vip
	`
	err := r.db.QueryRow(ctx, query, client.Name, client.IsVIP).Scan(
		&created.ID, &created.Name, &created.IsVIP,
	)
	if err != nil {
		r.log.Error("failed to create client", logger.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *clientRepo) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	var client models.Client
	query := `SELECT id, name, is_vip FROM clients WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&client.ID, &client.Name, &client.IsVIP)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get client by id", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) DeleteByID(ctx context.Context, id int64) (*models.Client, error) {
	client, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, `UPDATE orders SET client_id = $1 WHERE client_id = $2`,
		models.UnassignedID, id)
	if err != nil {
		r.log.Error("failed to detach orders from client", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}

	_, err = r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete client", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return client, nil
}
