package domain

import "time"

// Resolution is everything jestpath found for one project root
type Resolution struct {
	RootPath            string    `json:"root_path"`
	Platform            string    `json:"platform"`
	RunnerCommand       string    `json:"runner_command"`
	ConfigPath          string    `json:"config_path"`
	PackageMetadataPath string    `json:"package_metadata_path,omitempty"`
	JestVersion         string    `json:"jest_version,omitempty"`
	Scaffolded          bool      `json:"scaffolded"`
	ResolvedAt          time.Time `json:"resolved_at"`
}

// HasMetadata reports whether an installed Jest package was found
func (r Resolution) HasMetadata() bool {
	return r.PackageMetadataPath != ""
}
