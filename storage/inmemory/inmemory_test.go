package inmemory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"onyxtaxi/pkg/models"
	"onyxtaxi/storage"
)

func TestDriverCreateGetRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Driver().Create(ctx, &models.Driver{Name: "Ivan Ivanov", Car: "Honda Civic"})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)

	found, err := s.Driver().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, found)
}

func TestGetByIDMissing(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.Driver().GetByID(ctx, 99)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.Client().GetByID(ctx, 99)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = s.Order().GetByID(ctx, 99)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestPlaceholderRowsAreSeeded(t *testing.T) {
	s := New()
	ctx := context.Background()

	driver, err := s.Driver().GetByID(ctx, models.UnassignedID)
	require.NoError(t, err)
	require.Equal(t, "SuperDriver", driver.Name)

	client, err := s.Client().GetByID(ctx, models.UnassignedID)
	require.NoError(t, err)
	require.Equal(t, "SuperClient", client.Name)
}

func TestDeleteReturnsPriorRecord(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Driver().Create(ctx, &models.Driver{Name: "Ivan", Car: "Lada"})
	require.NoError(t, err)

	deleted, err := s.Driver().DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, deleted)

	_, err = s.Driver().GetByID(ctx, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteMissingLeavesStoreUnchanged(t *testing.T) {
	s := New()
	ctx := context.Background()

	kept, err := s.Driver().Create(ctx, &models.Driver{Name: "Ivan", Car: "Lada"})
	require.NoError(t, err)

	_, err = s.Driver().DeleteByID(ctx, 99)
	require.ErrorIs(t, err, storage.ErrNotFound)

	found, err := s.Driver().GetByID(ctx, kept.ID)
	require.NoError(t, err)
	require.Equal(t, kept, found)
}

func TestDeleteDetachesOrders(t *testing.T) {
	s := New()
	ctx := context.Background()

	driver, err := s.Driver().Create(ctx, &models.Driver{Name: "Ivan", Car: "Lada"})
	require.NoError(t, err)
	client, err := s.Client().Create(ctx, &models.Client{Name: "Anna", IsVIP: true})
	require.NoError(t, err)

	order, err := s.Order().Create(ctx, &models.Order{
		AddressFrom: "A",
		AddressTo:   "B",
		ClientID:    client.ID,
		DriverID:    driver.ID,
		DateCreated: time.Now().UTC(),
		Status:      models.StatusNotAccepted,
	})
	require.NoError(t, err)

	_, err = s.Driver().DeleteByID(ctx, driver.ID)
	require.NoError(t, err)

	detached, err := s.Order().GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnassignedID, detached.DriverID)
	require.Equal(t, client.ID, detached.ClientID)

	_, err = s.Client().DeleteByID(ctx, client.ID)
	require.NoError(t, err)

	detached, err = s.Order().GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, models.UnassignedID, detached.ClientID)
}

func TestOrderUpdateOverwritesEveryField(t *testing.T) {
	s := New()
	ctx := context.Background()

	created, err := s.Order().Create(ctx, &models.Order{
		AddressFrom: "A",
		AddressTo:   "B",
		ClientID:    1,
		DriverID:    1,
		DateCreated: time.Date(2021, 8, 23, 6, 31, 8, 0, time.UTC),
		Status:      models.StatusNotAccepted,
	})
	require.NoError(t, err)

	replacement := &models.Order{
		AddressFrom: "C",
		AddressTo:   "D",
		ClientID:    7,
		DriverID:    8,
		DateCreated: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.StatusDone,
	}
	updated, err := s.Order().Update(ctx, created.ID, replacement)
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, "C", updated.AddressFrom)
	require.Equal(t, "D", updated.AddressTo)
	require.Equal(t, int64(7), updated.ClientID)
	require.Equal(t, int64(8), updated.DriverID)
	require.Equal(t, models.StatusDone, updated.Status)

	_, err = s.Order().Update(ctx, 99, replacement)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWithinTxCommitsOnNil(t *testing.T) {
	s := New()
	ctx := context.Background()

	var created *models.Driver
	err := s.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		created, err = tx.Driver().Create(ctx, &models.Driver{Name: "Ivan", Car: "Lada"})
		return err
	})
	require.NoError(t, err)

	found, err := s.Driver().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created, found)
}

func TestWithinTxRollsBackOnError(t *testing.T) {
	s := New()
	ctx := context.Background()
	boom := errors.New("boom")

	var created *models.Driver
	err := s.WithinTx(ctx, func(tx storage.IStorage) error {
		var err error
		created, err = tx.Driver().Create(ctx, &models.Driver{Name: "Ivan", Car: "Lada"})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.Driver().GetByID(ctx, created.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWithinTxRejectsNesting(t *testing.T) {
	s := New()
	ctx := context.Background()

	err := s.WithinTx(ctx, func(tx storage.IStorage) error {
		return tx.WithinTx(ctx, func(storage.IStorage) error { return nil })
	})
	require.Error(t, err)
}
