package resolver

import (
	"strings"

	"jestpath/internal/config"
	"jestpath/internal/manifest"
)

// scaffoldPackages are the generators whose projects run Jest through "npm test"
var scaffoldPackages = []string{"react-scripts", "react-native-scripts", "react-scripts-ts"}

// RunnerCommand returns the shell command that launches Jest for s.
//
// The default runner inside a scaffolded project is replaced by the
// generator's test script; on Windows a bare path gets the .cmd shim suffix.
func (r *Resolver) RunnerCommand(s config.Settings) string {
	pathToJest := s.PathToJest
	if pathToJest == "" {
		pathToJest = config.DefaultPathToJest
	}
	path := r.os.Normalize(pathToJest)

	if r.isDefaultRunner(path, s.RootPath) && r.isScaffolded(s.RootPath) {
		if r.os.IsWindows() {
			return "npm.cmd test --"
		}
		return "npm test --"
	}

	ext := r.os.ExecutableExt()
	if ext != "" && !strings.HasSuffix(strings.ToLower(path), ext) {
		return path + ext
	}
	return path
}

func (r *Resolver) isDefaultRunner(path, rootPath string) bool {
	if r.samePath(path, r.os.Normalize(config.DefaultPathToJest)) {
		return true
	}
	return rootPath != "" && r.samePath(path, r.os.Join(rootPath, config.DefaultPathToJest))
}

// samePath compares normalized paths, ignoring case on Windows
func (r *Resolver) samePath(a, b string) bool {
	if r.os.IsWindows() {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// isScaffolded reports whether rootPath was generated by one of scaffoldPackages.
// The manifest is authoritative when it has a dependency map; otherwise the
// installed bin shims are checked.
func (r *Resolver) isScaffolded(rootPath string) bool {
	manifestPath := r.os.Join(rootPath, manifest.FileName)

	m, err := manifest.Read(r.probe, manifestPath)
	if err != nil {
		r.log.WithError(err).Debug("manifest unreadable, checking bin shims")
		return r.hasAnyNodeExecutable(rootPath)
	}

	found, err := m.HasDependency(scaffoldPackages...)
	if err != nil {
		r.log.WithError(err).Debug("checking bin shims")
		return r.hasAnyNodeExecutable(rootPath)
	}
	return found
}

func (r *Resolver) hasAnyNodeExecutable(rootPath string) bool {
	for _, name := range scaffoldPackages {
		if r.hasNodeExecutable(rootPath, name) {
			return true
		}
	}
	return false
}

func (r *Resolver) hasNodeExecutable(rootPath, executable string) bool {
	return r.probe.Exists(r.os.Join(rootPath, "node_modules", ".bin", executable+r.os.ExecutableExt()))
}
