package cli

import "jestpath/internal/config"

// Flags holds command-line flags
type Flags struct {
	SettingsFile string
	RootPath     string
	PathToJest   string
	PathToConfig string
	Platform     string
	Output       string
	NameFilter   string
	JSON         bool
	Verbose      bool
	LogJSON      bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		SettingsFile: f.SettingsFile,
		RootPath:     f.RootPath,
		PathToJest:   f.PathToJest,
		PathToConfig: f.PathToConfig,
		Platform:     f.Platform,
		Output:       f.Output,
		NameFilter:   f.NameFilter,
		JSON:         f.JSON,
		Verbose:      f.Verbose,
		LogJSON:      f.LogJSON,
	}
}
