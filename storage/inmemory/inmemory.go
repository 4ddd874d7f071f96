// Package inmemory is a map-backed storage implementation with the same
// observable behavior as the Postgres one. It backs the test suites and any
// run that has no database at hand.
package inmemory

import (
	"context"
	"errors"
	"sync"

	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

type data struct {
	drivers map[int64]models.Driver
	clients map[int64]models.Client
	orders  map[int64]models.Order

	driverSeq int64
	clientSeq int64
	orderSeq  int64
}

func (d *data) clone() *data {
	next := &data{
		drivers:   make(map[int64]models.Driver, len(d.drivers)),
		clients:   make(map[int64]models.Client, len(d.clients)),
		orders:    make(map[int64]models.Order, len(d.orders)),
		driverSeq: d.driverSeq,
		clientSeq: d.clientSeq,
		orderSeq:  d.orderSeq,
	}
	for id, v := range d.drivers {
		next.drivers[id] = v
	}
	for id, v := range d.clients {
		next.clients[id] = v
	}
	for id, v := range d.orders {
		next.orders[id] = v
	}
	return next
}

// runner executes an operation against the current data set; the Store
// flavor takes the lock, the transactional flavor is already exclusive.
type runner func(func(*data) error) error

type Store struct {
	mu   sync.Mutex
	data *data
}

func New() *Store {
	s := &Store{data: &data{
		drivers: make(map[int64]models.Driver),
		clients: make(map[int64]models.Client),
		orders:  make(map[int64]models.Order),
	}}
	// The same protected placeholder rows the migration seeds.
	s.data.drivers[models.UnassignedID] = models.Driver{ID: models.UnassignedID, Name: "SuperDriver", Car: "SuperCar"}
	s.data.clients[models.UnassignedID] = models.Client{ID: models.UnassignedID, Name: "SuperClient", IsVIP: true}
	return s
}

func (s *Store) run(fn func(*data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.data)
}

func (s *Store) Driver() storage.IDriverStorage { return driverRepo{run: s.run} }
func (s *Store) Client() storage.IClientStorage { return clientRepo{run: s.run} }
func (s *Store) Order() storage.IOrderStorage   { return orderRepo{run: s.run} }

func (s *Store) Close() {}

// WithinTx gives fn a private clone of the data set; the clone replaces the
// live one only when fn returns nil, so a failed operation leaves no trace.
func (s *Store) WithinTx(ctx context.Context, fn func(storage.IStorage) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.data.clone()
	if err := fn(&txStore{data: work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

type txStore struct {
	data *data
}

func (t *txStore) run(fn func(*data) error) error { return fn(t.data) }

func (t *txStore) Driver() storage.IDriverStorage { return driverRepo{run: t.run} }
func (t *txStore) Client() storage.IClientStorage { return clientRepo{run: t.run} }
func (t *txStore) Order() storage.IOrderStorage   { return orderRepo{run: t.run} }

func (t *txStore) Close() {}

func (t *txStore) WithinTx(ctx context.Context, fn func(storage.IStorage) error) error {
	return errors.New("nested transactions are not supported")
}

type driverRepo struct {
	run runner
}

func (r driverRepo) Create(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	var created models.Driver
	err := r.run(func(d *data) error {
		d.driverSeq++
		created = models.Driver{ID: d.driverSeq, Name: driver.Name, Car: driver.Car}
		d.drivers[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r driverRepo) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	var found models.Driver
	err := r.run(func(d *data) error {
		rec, ok := d.drivers[id]
		if !ok {
			return storage.ErrNotFound
		}
		found = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r driverRepo) DeleteByID(ctx context.Context, id int64) (*models.Driver, error) {
	var deleted models.Driver
	err := r.run(func(d *data) error {
		rec, ok := d.drivers[id]
		if !ok {
			return storage.ErrNotFound
		}
		for oid, o := range d.orders {
			if o.DriverID == id {
				o.DriverID = models.UnassignedID
				d.orders[oid] = o
			}
		}
		delete(d.drivers, id)
		deleted = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

type clientRepo struct {
	run runner
}

func (r clientRepo) Create(ctx context.Context, client *models.Client) (*models.Client, error) {
	var created models.Client
	err := r.run(func(d *data) error {
		d.clientSeq++
		created = models.Client{ID: d.clientSeq, Name: client.Name, IsVIP: client.IsVIP}
		d.clients[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r clientRepo) GetByID(ctx context.Context, id int64) (*models.Client, error) {
	var found models.Client
	err := r.run(func(d *data) error {
		rec, ok := d.clients[id]
		if !ok {
			return storage.ErrNotFound
		}
		found = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r clientRepo) DeleteByID(ctx context.Context, id int64) (*models.Client, error) {
	var deleted models.Client
	err := r.run(func(d *data) error {
		rec, ok := d.clients[id]
		if !ok {
			return storage.ErrNotFound
		}
		for oid, o := range d.orders {
			if o.ClientID == id {
				o.ClientID = models.UnassignedID
				d.orders[oid] = o
			}
		}
		delete(d.clients, id)
		deleted = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

type orderRepo struct {
	run runner
}

func (r orderRepo) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	var created models.Order
	err := r.run(func(d *data) error {
		d.orderSeq++
		created = *order
		created.ID = d.orderSeq
		d.orders[created.ID] = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	var found models.Order
	err := r.run(func(d *data) error {
		rec, ok := d.orders[id]
		if !ok {
			return storage.ErrNotFound
		}
		found = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &found, nil
}

func (r orderRepo) Update(ctx context.Context, id int64, order *models.Order) (*models.Order, error) {
	var updated models.Order
	err := r.run(func(d *data) error {
		if _, ok := d.orders[id]; !ok {
			return storage.ErrNotFound
		}
		updated = *order
		updated.ID = id
		d.orders[id] = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
