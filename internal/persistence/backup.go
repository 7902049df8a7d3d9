package persistence

import (
	"insightd/internal/models"
	"insightd/internal/persistence/interfaces"
	"insightd/internal/providers"
	"insightd/internal/structures"
	"os"
	"path/filepath"
	"sort"
	"time"

	json "github.com/goccy/go-json"
)

const backupSuffix = ".snap.zst"

// BackupManager keeps dated, compressed copies of the snapshot so a
// corrupt main file never costs the whole dataset. Backups older than
// the configured TTL are pruned on every backup tick.
type BackupManager struct {
	dir        string
	ttl        time.Duration
	store      *models.InsightStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewBackupManager(conf *structures.Config, store *models.InsightStore, compressor interfaces.CompressorInterface, logger providers.Logger) *BackupManager {
	return &BackupManager{
		dir:        conf.Persistence.BackupDir,
		ttl:        conf.Persistence.BackupTTL,
		store:      store,
		compressor: compressor,
		logger:     logger,
	}
}

func (bm *BackupManager) Enabled() bool {
	return bm.dir != ""
}

// Backup writes a dated copy of the current record set and prunes
// expired ones.
func (bm *BackupManager) Backup() error {
	if !bm.Enabled() {
		return nil
	}

	jsonData, err := json.Marshal(bm.store.List())
	if err != nil {
		return err
	}
	compressed, err := bm.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(bm.dir, 0755); err != nil {
		return err
	}

	name := "insights-" + time.Now().UTC().Format("20060102T150405") + backupSuffix
	path := filepath.Join(bm.dir, name)

	tmpFile := path + ".tmp"
	if err := os.WriteFile(tmpFile, compressed, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpFile, path); err != nil {
		return err
	}

	bm.prune()
	return nil
}

// RestoreLatest loads the newest readable backup. Reports false when no
// usable backup exists. Unreadable backups are skipped, not fatal.
func (bm *BackupManager) RestoreLatest() ([]models.InsightRecord, bool) {
	if !bm.Enabled() {
		return nil, false
	}

	files, err := bm.backupFiles()
	if err != nil {
		bm.logger.Errorf(providers.TypeApp, "Failed to scan backup dir %s: %s", bm.dir, err)
		return nil, false
	}

	// Newest first
	sort.Sort(sort.Reverse(sort.StringSlice(files)))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			bm.logger.Errorf(providers.TypeApp, "Failed to read backup %s: %s", file, err)
			continue
		}
		payload, err := bm.compressor.Decompress(data)
		if err != nil {
			bm.logger.Errorf(providers.TypeApp, "Failed to decompress backup %s: %s", file, err)
			continue
		}
		records, err := models.Normalize(payload)
		if err != nil {
			bm.logger.Errorf(providers.TypeApp, "Failed to parse backup %s: %s", file, err)
			continue
		}
		bm.logger.Warnf(providers.TypeApp, "Restored %d records from backup %s", len(records), file)
		return records, true
	}
	return nil, false
}

func (bm *BackupManager) backupFiles() ([]string, error) {
	return filepath.Glob(filepath.Join(bm.dir, "insights-*"+backupSuffix))
}

func (bm *BackupManager) prune() {
	if bm.ttl <= 0 {
		return
	}

	files, err := bm.backupFiles()
	if err != nil {
		return
	}

	cutoff := time.Now().Add(-bm.ttl)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(file); err != nil {
				bm.logger.Errorf(providers.TypeApp, "Failed to prune backup %s: %s", file, err)
			}
		}
	}
}
