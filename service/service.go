package service

import (
	"onyxtaxi/pkg/logger"
	"onyxtaxi/storage"
)

type IServiceManager interface {
	Driver() DriverService
	Client() ClientService
	Order() OrderService
}

type service struct {
	driverService DriverService
	clientService ClientService
	orderService  OrderService
}

func New(stg storage.IStorage, log logger.ILogger) IServiceManager {
	return &service{
		driverService: NewDriverService(stg, log),
		clientService: NewClientService(stg, log),
		orderService:  NewOrderService(stg, log),
	}
}

func (s *service) Driver() DriverService {
	return s.driverService
}

func (s *service) Client() ClientService {
	return s.clientService
}

func (s *service) Order() OrderService {
	return s.orderService
}
