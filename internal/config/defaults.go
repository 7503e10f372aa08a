package config

const (
	// DefaultRootPath is the project root used when none is configured
	DefaultRootPath = "."
	// DefaultPathToJest is the runner npm installs into every project
	DefaultPathToJest = "node_modules/.bin/jest"
	// DefaultPathToConfig means "let Jest find its own config"
	DefaultPathToConfig = ""
	// DefaultOutputFile is where --output writes when given without a value
	DefaultOutputFile = "jestpath-report.json"
	// DefaultEnvFile is loaded from the project root when present
	DefaultEnvFile = ".env"
)

// Environment variables read by Load. They sit between the settings file and flags.
const (
	EnvRootPath     = "JEST_ROOT_PATH"
	EnvPathToJest   = "JEST_PATH_TO_JEST"
	EnvPathToConfig = "JEST_PATH_TO_CONFIG"
)

// DefaultPathsToIgnore are the directories never descended into when scanning for projects
var DefaultPathsToIgnore = []string{
	"node_modules",
	"bower_components",
	"dist",
	"build",
	"coverage",
	"vendor",
}
