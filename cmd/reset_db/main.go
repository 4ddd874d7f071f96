package main

import (
	"context"
	"fmt"

	"onyxtaxi/config"
	"onyxtaxi/pkg/logger"
	"onyxtaxi/storage/postgres"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName)
	pg, err := postgres.New(context.Background(), cfg, log)
	if err != nil {
		panic(err)
	}
	defer pg.Close()

	pool := pg.(*postgres.Store).GetPool()

	// Wipe everything, then re-seed the protected placeholder rows the
	// orders' unassigned foreign keys point at.
	_, err = pool.Exec(context.Background(), "TRUNCATE TABLE drivers, clients, orders")
	if err != nil {
		log.Error(fmt.Sprintf("Failed to truncate tables: %v", err))
		return
	}

	_, err = pool.Exec(context.Background(),
		"INSERT INTO drivers (id, name, car) VALUES (-404, 'SuperDriver', 'SuperCar')")
	if err != nil {
		log.Error(fmt.Sprintf("Failed to seed placeholder driver: %v", err))
		return
	}

	_, err = pool.Exec(context.Background(),
		"INSERT INTO clients (id, name, is_vip) VALUES (-404, 'SuperClient', TRUE)")
	if err != nil {
		log.Error(fmt.Sprintf("Failed to seed placeholder client: %v", err))
		return
	}

	log.Info("Successfully reset drivers, clients, and orders tables.")
}
