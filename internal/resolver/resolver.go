package resolver

import (
	"regexp"
	"time"

	"github.com/sirupsen/logrus"

	"jestpath/internal/config"
	"jestpath/internal/domain"
	"jestpath/internal/logging"
	"jestpath/internal/platform"
	"jestpath/internal/probe"
)

// Resolver locates the Jest runner, its config and its package metadata
// for a project. It holds no state between calls: every call re-probes the
// filesystem.
type Resolver struct {
	os    platform.OS
	probe probe.Probe
	log   *logrus.Entry
}

// New creates a Resolver for the given platform conventions and filesystem
func New(os platform.OS, p probe.Probe) *Resolver {
	return &Resolver{
		os:    os,
		probe: p,
		log:   logging.NewLogger("resolver"),
	}
}

// Platform returns the platform the resolver formats paths for
func (r *Resolver) Platform() platform.OS {
	return r.os
}

// ConfigPath returns the configured Jest config path normalized, or "" when none is set
func (r *Resolver) ConfigPath(s config.Settings) string {
	if s.PathToConfig == "" {
		return ""
	}
	return r.os.Normalize(s.PathToConfig)
}

// EscapeRegExp backslash-escapes every regular expression metacharacter in s
// (. * + ? ^ $ { } ( ) | [ ] \) so the result matches s literally.
func EscapeRegExp(s string) string {
	return regexp.QuoteMeta(s)
}

// Resolve runs every lookup for s and bundles the answers
func (r *Resolver) Resolve(s config.Settings) domain.Resolution {
	res := domain.Resolution{
		RootPath:      s.RootPath,
		Platform:      r.os.String(),
		RunnerCommand: r.RunnerCommand(s),
		ConfigPath:    r.ConfigPath(s),
		Scaffolded:    r.isScaffolded(s.RootPath),
		ResolvedAt:    time.Now(),
	}

	if path, ok := r.PackageMetadataPath(s); ok {
		res.PackageMetadataPath = path
	}
	if version, ok := r.JestVersion(s); ok {
		res.JestVersion = version
	}

	r.log.WithFields(logrus.Fields{
		"root":    res.RootPath,
		"command": res.RunnerCommand,
		"meta":    res.PackageMetadataPath,
	}).Debug("resolved project")

	return res
}
