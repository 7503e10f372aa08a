package resolver

import (
	"regexp"
	"strings"

	"jestpath/internal/config"
	"jestpath/internal/manifest"
)

// nodeModulesSegment matches node_modules as a whole path segment; group 1 is the name itself
var nodeModulesSegment = regexp.MustCompile(`(?i)(?:^|[\\/])(node_modules)(?:[\\/]|$)`)

// metadataCandidates are probed in order below the node_modules directory
var metadataCandidates = []string{
	"jest/package.json",
	"jest-cli/package.json",
	"react-scripts/node_modules/jest/package.json",
}

// PackageMetadataPath returns the path of the installed Jest package.json.
// The boolean is false when no candidate exists.
func (r *Resolver) PackageMetadataPath(s config.Settings) (string, bool) {
	base := r.nodeModulesDir(s)

	for _, candidate := range metadataCandidates {
		path := r.os.Join(base, candidate)
		if r.probe.Exists(path) {
			return path, true
		}
		r.log.WithField("path", path).Debug("metadata candidate missing")
	}
	return "", false
}

// JestVersion reads the version field of the installed Jest package.json
func (r *Resolver) JestVersion(s config.Settings) (string, bool) {
	path, ok := r.PackageMetadataPath(s)
	if !ok {
		return "", false
	}

	m, err := manifest.Read(r.probe, path)
	if err != nil {
		r.log.WithError(err).Debug("jest manifest unreadable")
		return "", false
	}
	if m.Version == "" {
		return "", false
	}
	return m.Version, true
}

// nodeModulesDir derives the node_modules directory from the runner
// command when it points inside one, falling back to <root>/node_modules.
func (r *Resolver) nodeModulesDir(s config.Settings) string {
	base := r.os.Join(s.RootPath, "node_modules")

	fields := strings.Fields(s.PathToJest)
	if len(fields) == 0 {
		return base
	}

	token := stripSurroundingQuotes(fields[0])
	loc := nodeModulesSegment.FindStringSubmatchIndex(token)
	if loc == nil {
		return base
	}

	relative := token[:loc[3]]
	if r.os.IsAbs(relative) {
		return r.os.Normalize(relative)
	}
	return r.os.Join(s.RootPath, relative)
}

func stripSurroundingQuotes(s string) string {
	const quotes = "'\"`"
	if s != "" && strings.ContainsRune(quotes, rune(s[0])) {
		s = s[1:]
	}
	if s != "" && strings.ContainsRune(quotes, rune(s[len(s)-1])) {
		s = s[:len(s)-1]
	}
	return s
}
