package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/florawise/guild-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingPlantStore records how many times GetAll was called.
type countingPlantStore struct {
	calls   atomic.Int64
	records []domain.PlantRecord
}

func (s *countingPlantStore) GetAll(ctx context.Context) ([]domain.PlantRecord, error) {
	s.calls.Add(1)
	return s.records, nil
}

func TestCatalogRefresherReloadsPeriodically(t *testing.T) {
	t.Parallel()

	store := &countingPlantStore{}
	provider, err := NewCatalogProvider(store, nil)
	require.NoError(t, err)

	refresher := NewCatalogRefresher(provider, CatalogRefresherConfig{
		Interval: 5 * time.Millisecond,
	}, nil)
	refresher.Start()
	defer refresher.Stop()

	require.Eventually(t, func() bool {
		return store.calls.Load() >= 2
	}, time.Second, time.Millisecond)

	catalog, err := provider.Current()
	require.NoError(t, err)
	assert.Zero(t, catalog.Len())
}

func TestCatalogRefresherDisabledWhenIntervalZero(t *testing.T) {
	t.Parallel()

	store := &countingPlantStore{}
	provider, err := NewCatalogProvider(store, nil)
	require.NoError(t, err)

	refresher := NewCatalogRefresher(provider, CatalogRefresherConfig{}, nil)
	refresher.Start()
	refresher.Stop()

	assert.Zero(t, store.calls.Load())
}

func TestCatalogRefresherStopTerminatesLoop(t *testing.T) {
	t.Parallel()

	store := &countingPlantStore{}
	provider, err := NewCatalogProvider(store, nil)
	require.NoError(t, err)

	refresher := NewCatalogRefresher(provider, CatalogRefresherConfig{
		Interval: time.Millisecond,
	}, nil)
	refresher.Start()
	refresher.Stop()

	settled := store.calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, store.calls.Load())
}
