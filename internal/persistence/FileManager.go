package persistence

import (
	"insightd/internal/models"
	"insightd/internal/persistence/interfaces"
	"insightd/internal/providers"
	"os"

	json "github.com/goccy/go-json"
)

type FileManager struct {
	store      *models.InsightStore
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, store *models.InsightStore, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		store:      store,
		logger:     logger,
	}
}

// SaveToFile writes the full current record set as one compressed JSON
// snapshot. The write is atomic: tmp file, sync, rename.
func (f *FileManager) SaveToFile(fileName string) error {
	records := f.store.List()

	jsonData, err := json.Marshal(records)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile reads a snapshot and installs the normalized record set
// into the store. Reports false when no snapshot exists yet. Snapshots
// written before compression was introduced are plain JSON; those are
// parsed as-is.
func (f *FileManager) LoadFromFile(fileName string) (bool, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}

	payload, err := f.compressor.Decompress(data)
	if err != nil {
		f.logger.Warnf(providers.TypeApp, "Snapshot is not compressed, trying plain JSON")
		payload = data
	}

	records, err := models.Normalize(payload)
	if err != nil {
		return false, err
	}

	f.store.Put(records)
	return true, nil
}
