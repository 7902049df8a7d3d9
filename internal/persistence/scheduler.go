package persistence

import (
	"insightd/internal/models"
	"insightd/internal/persistence/interfaces"
	"insightd/internal/providers"
	"insightd/internal/structures"
	"sync"

	"github.com/roylee0704/gron"
)

type Scheduler struct {
	config      *structures.Config
	logger      providers.Logger
	store       *models.InsightStore
	fileManager *FileManager
	backups     *BackupManager
	cron        *gron.Cron
	opsMu       sync.Mutex
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Persistence.SaveInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
		if err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Persisted %d records to %s", s.store.Len(), s.config.Persistence.FilePath)
	})

	if s.backups.Enabled() && s.config.Persistence.BackupInterval > 0 {
		s.cron.AddFunc(gron.Every(s.config.Persistence.BackupInterval), func() {
			s.opsMu.Lock()
			defer s.opsMu.Unlock()

			if err := s.backups.Backup(); err != nil {
				s.logger.Errorf(providers.TypeApp, "Error while writing backup: %s", err)
				return
			}
			s.logger.Infof(providers.TypeApp, "Backup written to %s", s.config.Persistence.BackupDir)
		})
	}

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore installs the record set at startup. A corrupt snapshot never
// blocks the start: it falls back to the newest backup, then to the
// seed set (or an empty store when seeding is disabled).
func (s *Scheduler) Restore() error {
	loaded, err := s.fileManager.LoadFromFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Snapshot unreadable: %s", err)
		if records, ok := s.backups.RestoreLatest(); ok {
			s.store.Put(records)
			return s.Persist()
		}
		s.logger.Warnf(providers.TypeApp, "No usable backup, starting fresh")
		loaded = false
	}

	if !loaded && s.store.Len() == 0 && s.config.Insight.SeedOnEmpty {
		s.logger.Infof(providers.TypeApp, "Empty store, installing seed records")
		s.store.Put(models.SeedRecords())
		return s.Persist()
	}

	s.logger.Infof(providers.TypeApp, "Restored %d insight records", s.store.Len())
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	err := s.fileManager.SaveToFile(s.config.Persistence.FilePath)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store *models.InsightStore, fileManager *FileManager, backups *BackupManager) interfaces.SchedulerInterface {
	return &Scheduler{
		config:      config,
		logger:      logger,
		store:       store,
		fileManager: fileManager,
		backups:     backups,
	}
}
