package services

import (
	"insightd/internal/models"
	"insightd/internal/persistence"
	"insightd/internal/providers"
	"insightd/internal/structures"
	"time"
)

type InsightServiceInterface interface {
	Add(rec models.InsightRecord) error
	Remove(id string) (bool, error)
	List() []models.InsightRecord
	Count() int
	Persist() error
}

// InsightService owns all record mutations. Every successful Add or
// Remove writes the full snapshot before returning; there is no partial
// or deferred write.
type InsightService struct {
	config      *structures.Config
	store       *models.InsightStore
	fileManager *persistence.FileManager
	metrics     providers.MetricsProviderInterface
	logger      providers.Logger
}

func NewInsightService(config *structures.Config, store *models.InsightStore, fileManager *persistence.FileManager, metrics providers.MetricsProviderInterface, logger providers.Logger) InsightServiceInterface {
	return &InsightService{
		config:      config,
		store:       store,
		fileManager: fileManager,
		metrics:     metrics,
		logger:      logger,
	}
}

func (is *InsightService) Add(rec models.InsightRecord) error {
	is.store.Add(rec)
	return is.Persist()
}

func (is *InsightService) Remove(id string) (bool, error) {
	if !is.store.Remove(id) {
		return false, nil
	}
	return true, is.Persist()
}

func (is *InsightService) List() []models.InsightRecord {
	return is.store.List()
}

func (is *InsightService) Count() int {
	return is.store.Len()
}

func (is *InsightService) Persist() error {
	start := time.Now()
	err := is.fileManager.SaveToFile(is.config.Persistence.FilePath)
	is.metrics.ObservePersistenceDuration(time.Since(start))
	if err != nil {
		is.logger.Errorf(providers.TypeApp, "Persisting %d records failed: %s", is.store.Len(), err)
		return err
	}
	return nil
}
