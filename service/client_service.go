package service

import (
	"context"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

type ClientService interface {
	Create(ctx context.Context, client *models.Client) (*models.Client, error)
	GetByID(ctx context.Context, id int64) (*models.Client, error)
	DeleteByID(ctx context.Context, id int64) (*models.Client, error)
}

type clientService struct {
	stg storage.IStorage
	log logger.ILogger
}

func NewClientService(stg storage.IStorage, log logger.ILogger) ClientService {
	return &clientService{stg: stg, log: log}
}

func (s *clientService) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	var created *models.Client
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		created, err = tx.Client().Create(ctx, client)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *clientService) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	var client *models.Client
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		client, err = tx.Client().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (s *clientService) DeleteByID(ctx context.Context, id int64) (*models.Client, error) {
	var deleted *models.Client
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		deleted, err = tx.Client().DeleteByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
