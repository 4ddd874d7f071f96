package service

import (
	"context"

	"onyxtaxi/pkg/logger"
	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

type OrderService interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	Update(ctx context.Context, id int64, order *models.Order) (*models.Order, error)
}

type orderService struct {
	stg storage.IStorage
	log logger.ILogger
}

func NewOrderService(stg storage.IStorage, log logger.ILogger) OrderService {
	return &orderService{stg: stg, log: log}
}

func (s *orderService) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	var created *models.Order
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		created, err = tx.Order().Create(ctx, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *orderService) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var order *models.Order
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		order, err = tx.Order().GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) Update(ctx context.Context, id int64, order *models.Order) (*models.Order, error) {
	var updated *models.Order
	err := s.stg.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		updated, err = tx.Order().Update(ctx, id, order)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
