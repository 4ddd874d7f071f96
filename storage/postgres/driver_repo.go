package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

type driverRepo struct {
	db  DB
	log logger.ILogger
}

func NewDriverRepo(db DB, log logger.ILogger) storage.IDriverStorage {
	return &driverRepo{db: db, log: log}
}

func (r *driverRepo) Create(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	var created models.Driver
	query := `
		INSERT INTO drivers (name, car)
		VALUES ($1, $2)
		RETURNING id, name, car
	`
	err := r.db.QueryRow(ctx, query, driver.Name, driver.Car).Scan(
		&created.ID, &created.Name, &created.Car,
	)
	if err != nil {
		r.log.Error("failed to create driver", logger.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *driverRepo) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	var driver models.Driver
	query := `SELECT id, name, car FROM drivers WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&driver.ID, &driver.Name, &driver.Car)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		r.log.Error("failed to get driver by id", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return &driver, nil
}

func (r *driverRepo) DeleteByID(ctx context.Context, id int64) (*models.Driver, error) {
	driver, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Orders survive the driver; they fall back to the placeholder row.
	_, err = r.db.Exec(ctx, `UPDATE orders SET driver_id = $1 WHERE driver_id = $2`,
		models.UnassignedID, id)
	if err != nil {
		r.log.Error("failed to detach orders from driver", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}

	_, err = r.db.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, id)
	if err != nil {
		r.log.Error("failed to delete driver", logger.Int64("id", id), logger.Error(err))
		return nil, err
	}
	return driver, nil
}
