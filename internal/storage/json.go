package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jestpath/internal/domain"
)

// Save writes resolutions and their summary to the configured JSON output file.
func (s *JSONStorage) Save(resolutions []domain.Resolution) error {
	meta := domain.ReportMeta{
		TotalProjects: len(resolutions),
		Timestamp:     time.Now().Format(time.RFC3339),
	}
	for _, r := range resolutions {
		if r.HasMetadata() {
			meta.ProjectsWithJest++
		}
		if r.Scaffolded {
			meta.ScaffoldedProjects++
		}
		meta.Platform = r.Platform
	}

	data, err := json.MarshalIndent(domain.Report{Meta: meta, Resolutions: resolutions}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Load reads the last report from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.Report, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report file: %w", err)
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &report, nil
}
