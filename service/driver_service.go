package service

import (
	"context"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

type DriverService interface {
	Create(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	DeleteByID(ctx context.Context, id int64) (*models.Driver, error)
}

type driverService struct {
	stg storage.IStorage
	log logger.ILogger
}

func NewDriverService(stg storage.IStorage, log logger.ILogger) DriverService {
	return &driverService{stg: stg, log: log}
}

func (s *driverService) Create(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	var created *models.Driver
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		created, err = tx.Driver().Create(ctx, driver)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *driverService) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	var driver *models.Driver
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		driver, err = tx.Driver().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return driver, nil
}

func (s *driverService) DeleteByID(ctx context.Context, id int64) (*models.Driver, error) {
	var deleted *models.Driver
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		deleted, err = tx.Driver().DeleteByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
