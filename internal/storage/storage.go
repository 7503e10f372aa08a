package storage

import (
	"jestpath/internal/config"
	"jestpath/internal/domain"
)

// Storage persists and loads resolution reports (e.g. for the show command).
type Storage interface {
	Save(resolutions []domain.Resolution) error
	Load() (*domain.Report, error)
}

// JSONStorage stores reports in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}
