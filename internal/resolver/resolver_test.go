package resolver

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jestpath/internal/config"
	"jestpath/internal/platform"
	"jestpath/internal/probe"
)

const craManifest = `{"name":"app","dependencies":{"react-scripts":"1.0.0"}}`

func TestRunnerCommand_Posix(t *testing.T) {
	tests := []struct {
		name     string
		files    probe.Map
		settings config.Settings
		expected string
	}{
		{
			name:     "default runner in plain project",
			files:    probe.Map{"/project/package.json": []byte(`{"dependencies":{"react":"18.0.0"}}`)},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "node_modules/.bin/jest",
		},
		{
			name:     "default runner in create-react-app project",
			files:    probe.Map{"/project/package.json": []byte(craManifest)},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name:     "dot-prefixed default runner is still the default",
			files:    probe.Map{"/project/package.json": []byte(craManifest)},
			settings: config.Settings{RootPath: "/project", PathToJest: "./node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name:     "absolute default runner under root",
			files:    probe.Map{"/project/package.json": []byte(craManifest)},
			settings: config.Settings{RootPath: "/project", PathToJest: "/project/node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name:     "empty runner falls back to the default",
			files:    probe.Map{"/project/package.json": []byte(craManifest)},
			settings: config.Settings{RootPath: "/project"},
			expected: "npm test --",
		},
		{
			name:     "custom runner in create-react-app project is kept",
			files:    probe.Map{"/project/package.json": []byte(craManifest)},
			settings: config.Settings{RootPath: "/project", PathToJest: "yarn jest"},
			expected: "yarn jest",
		},
		{
			name: "bin shim fallback without manifest",
			files: probe.Map{
				"/project/node_modules/.bin/react-native-scripts": nil,
			},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name: "bin shim fallback with unparsable manifest",
			files: probe.Map{
				"/project/package.json":                       []byte(`{not json`),
				"/project/node_modules/.bin/react-scripts-ts": nil,
			},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name: "bin shim fallback with list shaped dependencies",
			files: probe.Map{
				"/project/package.json":                    []byte(`{"dependencies":["react-scripts"]}`),
				"/project/node_modules/.bin/react-scripts": nil,
			},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name: "manifest with dependencies is authoritative over bin shims",
			files: probe.Map{
				"/project/package.json":                    []byte(`{"dependencies":{"react":"18.0.0"}}`),
				"/project/node_modules/.bin/react-scripts": nil,
			},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "node_modules/.bin/jest",
		},
		{
			name: "windows shim ignored on posix",
			files: probe.Map{
				"/project/node_modules/.bin/react-scripts.cmd": nil,
			},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "node_modules/.bin/jest",
		},
		{
			name:     "numeric version field does not hide dependencies",
			files:    probe.Map{"/project/package.json": []byte(`{"version":1,"dependencies":{"react-scripts":"1.0.0"}}`)},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name:     "list shaped name does not hide dependencies",
			files:    probe.Map{"/project/package.json": []byte(`{"name":["x"],"dependencies":{"react-scripts":"1.0.0"}}`)},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "npm test --",
		},
		{
			name:     "object valued dependency does not hide the others",
			files:    probe.Map{"/project/package.json": []byte(`{"dependencies":{"react-scripts":"1.0.0","x":{"version":"1"}}}`)},
			settings: config.Settings{RootPath: "/project", PathToJest: "node_modules/.bin/jest"},
			expected: "npm test --",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(platform.Posix, tt.files)
			assert.Equal(t, tt.expected, r.RunnerCommand(tt.settings))
		})
	}
}

func TestRunnerCommand_Windows(t *testing.T) {
	const root = `C:\project`

	tests := []struct {
		name     string
		files    probe.Map
		settings config.Settings
		expected string
	}{
		{
			name:     "default runner gets cmd suffix",
			files:    probe.Map{},
			settings: config.Settings{RootPath: root, PathToJest: "node_modules/.bin/jest"},
			expected: `node_modules\.bin\jest.cmd`,
		},
		{
			name:     "create-react-app project",
			files:    probe.Map{root + `\package.json`: []byte(craManifest)},
			settings: config.Settings{RootPath: root, PathToJest: "node_modules/.bin/jest"},
			expected: "npm.cmd test --",
		},
		{
			name:     "bin shim fallback uses cmd extension",
			files:    probe.Map{root + `\node_modules\.bin\react-scripts.cmd`: nil},
			settings: config.Settings{RootPath: root, PathToJest: "node_modules/.bin/jest"},
			expected: "npm.cmd test --",
		},
		{
			name:     "existing cmd suffix is kept",
			files:    probe.Map{},
			settings: config.Settings{RootPath: root, PathToJest: `C:\tools\jest.cmd`},
			expected: `C:\tools\jest.cmd`,
		},
		{
			name:     "suffix check ignores case",
			files:    probe.Map{},
			settings: config.Settings{RootPath: root, PathToJest: `jest.CMD`},
			expected: `jest.CMD`,
		},
		{
			name:     "custom path gets cmd suffix",
			files:    probe.Map{},
			settings: config.Settings{RootPath: root, PathToJest: "tools/bin/jest"},
			expected: `tools\bin\jest.cmd`,
		},
		{
			name:     "default runner under root matches regardless of case",
			files:    probe.Map{root + `\package.json`: []byte(craManifest)},
			settings: config.Settings{RootPath: root, PathToJest: `C:\Project\node_modules\.bin\jest`},
			expected: "npm.cmd test --",
		},
		{
			name:     "relative default runner matches regardless of case",
			files:    probe.Map{root + `\package.json`: []byte(craManifest)},
			settings: config.Settings{RootPath: root, PathToJest: `Node_Modules\.BIN\Jest`},
			expected: "npm.cmd test --",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(platform.Windows, tt.files)
			result := r.RunnerCommand(tt.settings)
			assert.Equal(t, tt.expected, result)
			assert.NotEmpty(t, result)
		})
	}
}

func TestRunnerCommand_OnDisk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(craManifest), 0644))

	r := New(platform.Posix, probe.NewOS())
	assert.Equal(t, "npm test --", r.RunnerCommand(config.Settings{RootPath: root, PathToJest: config.DefaultPathToJest}))
}

func TestConfigPath(t *testing.T) {
	posix := New(platform.Posix, probe.Map{})
	windows := New(platform.Windows, probe.Map{})

	assert.Equal(t, "", posix.ConfigPath(config.Settings{RootPath: "/project"}))
	assert.Equal(t, "", windows.ConfigPath(config.Settings{RootPath: `C:\project`}))

	assert.Equal(t, "config/jest.config.js", posix.ConfigPath(config.Settings{PathToConfig: "./config//jest.config.js"}))
	assert.Equal(t, `config\jest.config.js`, windows.ConfigPath(config.Settings{PathToConfig: "./config/jest.config.js"}))

	for _, p := range []string{"a/../b/jest.json", `C:\x\.\jest.json`, "jest.json"} {
		once := windows.ConfigPath(config.Settings{PathToConfig: p})
		assert.Equal(t, once, windows.ConfigPath(config.Settings{PathToConfig: once}))
	}
}

func TestPackageMetadataPath(t *testing.T) {
	const (
		jest    = "/project/node_modules/jest/package.json"
		jestCLI = "/project/node_modules/jest-cli/package.json"
		cra     = "/project/node_modules/react-scripts/node_modules/jest/package.json"
	)

	tests := []struct {
		name       string
		files      probe.Map
		pathToJest string
		expected   string
		found      bool
	}{
		{
			name:  "nothing installed",
			files: probe.Map{},
			found: false,
		},
		{
			name:     "jest wins over the others",
			files:    probe.Map{jest: nil, jestCLI: nil, cra: nil},
			expected: jest,
			found:    true,
		},
		{
			name:     "jest-cli before react-scripts",
			files:    probe.Map{jestCLI: nil, cra: nil},
			expected: jestCLI,
			found:    true,
		},
		{
			name:     "react-scripts bundled jest",
			files:    probe.Map{cra: nil},
			expected: cra,
			found:    true,
		},
		{
			name:       "runner without node_modules keeps the default base",
			files:      probe.Map{jest: nil},
			pathToJest: "yarn jest --watch",
			expected:   jest,
			found:      true,
		},
		{
			name:       "custom node_modules from runner path",
			files:      probe.Map{"/project/custom/node_modules/jest/package.json": nil, jest: nil},
			pathToJest: "./custom/node_modules/.bin/jest --ci",
			expected:   "/project/custom/node_modules/jest/package.json",
			found:      true,
		},
		{
			name:       "node_modules match ignores case",
			files:      probe.Map{"/project/web/Node_Modules/jest-cli/package.json": nil},
			pathToJest: "web/Node_Modules/.bin/jest",
			expected:   "/project/web/Node_Modules/jest-cli/package.json",
			found:      true,
		},
		{
			name:       "node_modules inside a longer directory name is not a segment",
			files:      probe.Map{jest: nil, "/project/my_node_modules/jest/package.json": nil},
			pathToJest: "./my_node_modules_cache/bin/jest",
			expected:   jest,
			found:      true,
		},
		{
			name:       "later node_modules segment is used when an earlier match is not a segment",
			files:      probe.Map{"/project/my_node_modules/node_modules/jest/package.json": nil},
			pathToJest: "my_node_modules/node_modules/.bin/jest",
			expected:   "/project/my_node_modules/node_modules/jest/package.json",
			found:      true,
		},
		{
			name:       "absolute runner path is not joined to the root",
			files:      probe.Map{"/opt/tools/node_modules/jest/package.json": nil},
			pathToJest: "/opt/tools/node_modules/.bin/jest",
			expected:   "/opt/tools/node_modules/jest/package.json",
			found:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(platform.Posix, tt.files)
			path, found := r.PackageMetadataPath(config.Settings{RootPath: "/project", PathToJest: tt.pathToJest})
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, path)
		})
	}
}

func TestPackageMetadataPath_QuotedRunner(t *testing.T) {
	files := probe.Map{"/project/custom/node_modules/jest/package.json": nil}
	r := New(platform.Posix, files)

	unquoted, ok := r.PackageMetadataPath(config.Settings{RootPath: "/project", PathToJest: "./custom/node_modules/.bin/jest"})
	require.True(t, ok)

	for _, quoted := range []string{
		`"./custom/node_modules/.bin/jest"`,
		`'./custom/node_modules/.bin/jest'`,
		"`./custom/node_modules/.bin/jest`",
		`"./custom/node_modules/.bin/jest`,
	} {
		path, ok := r.PackageMetadataPath(config.Settings{RootPath: "/project", PathToJest: quoted})
		require.True(t, ok, quoted)
		assert.Equal(t, unquoted, path, quoted)
		assert.Equal(t, "/project/custom/node_modules", r.nodeModulesDir(config.Settings{RootPath: "/project", PathToJest: quoted}))
	}
}

func TestPackageMetadataPath_Windows(t *testing.T) {
	files := probe.Map{`C:\project\node_modules\jest-cli\package.json`: nil}
	r := New(platform.Windows, files)

	path, ok := r.PackageMetadataPath(config.Settings{RootPath: `C:\project`, PathToJest: "node_modules/.bin/jest"})
	require.True(t, ok)
	assert.Equal(t, `C:\project\node_modules\jest-cli\package.json`, path)
}

func TestPackageMetadataPath_OnDisk(t *testing.T) {
	root := t.TempDir()
	r := New(platform.Current(), probe.NewOS())

	_, ok := r.PackageMetadataPath(config.Settings{RootPath: root})
	assert.False(t, ok)

	dir := filepath.Join(root, "node_modules", "jest-cli")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"version":"29.7.0"}`), 0644))

	path, ok := r.PackageMetadataPath(config.Settings{RootPath: root})
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "package.json"), path)

	version, ok := r.JestVersion(config.Settings{RootPath: root})
	require.True(t, ok)
	assert.Equal(t, "29.7.0", version)
}

func TestJestVersion(t *testing.T) {
	tests := []struct {
		name     string
		files    probe.Map
		expected string
		found    bool
	}{
		{name: "not installed", files: probe.Map{}},
		{
			name:     "version from metadata",
			files:    probe.Map{"/project/node_modules/jest/package.json": []byte(`{"name":"jest","version":"26.6.0"}`)},
			expected: "26.6.0",
			found:    true,
		},
		{
			name:  "unreadable metadata",
			files: probe.Map{"/project/node_modules/jest/package.json": []byte(`{`)},
		},
		{
			name:  "metadata without version",
			files: probe.Map{"/project/node_modules/jest/package.json": []byte(`{"name":"jest"}`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(platform.Posix, tt.files)
			version, found := r.JestVersion(config.Settings{RootPath: "/project"})
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, version)
		})
	}
}

func TestEscapeRegExp(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: "", expected: ""},
		{in: "plain", expected: "plain"},
		{in: "a.b*c", expected: `a\.b\*c`},
		{in: `.*+?^${}()|[]\`, expected: `\.\*\+\?\^\$\{\}\(\)\|\[\]\\`},
		{in: "src/App.test.js", expected: `src/App\.test\.js`},
		{in: "name-with spaces & #", expected: "name-with spaces & #"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			escaped := EscapeRegExp(tt.in)
			assert.Equal(t, tt.expected, escaped)

			re := regexp.MustCompile("^" + escaped + "$")
			assert.True(t, re.MatchString(tt.in))
		})
	}
}

func TestResolve(t *testing.T) {
	files := probe.Map{
		"/project/package.json":                   []byte(craManifest),
		"/project/node_modules/jest/package.json": []byte(`{"version":"24.9.0"}`),
	}
	r := New(platform.Posix, files)

	res := r.Resolve(config.Settings{RootPath: "/project", PathToJest: config.DefaultPathToJest, PathToConfig: "jest.config.js"})

	assert.Equal(t, "/project", res.RootPath)
	assert.Equal(t, "posix", res.Platform)
	assert.Equal(t, "npm test --", res.RunnerCommand)
	assert.Equal(t, "jest.config.js", res.ConfigPath)
	assert.Equal(t, "/project/node_modules/jest/package.json", res.PackageMetadataPath)
	assert.Equal(t, "24.9.0", res.JestVersion)
	assert.True(t, res.Scaffolded)
	assert.True(t, res.HasMetadata())
	assert.False(t, res.ResolvedAt.IsZero())
}

func TestStripSurroundingQuotes(t *testing.T) {
	assert.Equal(t, "jest", stripSurroundingQuotes(`"jest"`))
	assert.Equal(t, "jest", stripSurroundingQuotes("`jest'"))
	assert.Equal(t, `"jest"`, stripSurroundingQuotes(`""jest""`))
	assert.Equal(t, "", stripSurroundingQuotes(`"`))
	assert.Equal(t, "", stripSurroundingQuotes(""))
}
