package platform

import (
	"fmt"
	"path"
	"runtime"
	"strings"
)

// OS identifies the path and executable conventions to resolve against
type OS int

const (
	// Posix covers Linux, macOS and the BSDs
	Posix OS = iota
	// Windows uses backslash separators and .cmd shims for node binaries
	Windows
)

// Current returns the OS of the running host
func Current() OS {
	if runtime.GOOS == "windows" {
		return Windows
	}
	return Posix
}

// Parse converts a user supplied platform name into an OS.
// An empty name selects the running host.
func Parse(name string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Current(), nil
	case "posix", "linux", "darwin", "unix":
		return Posix, nil
	case "windows", "win32":
		return Windows, nil
	default:
		return Posix, fmt.Errorf("unknown platform: %s", name)
	}
}

func (o OS) String() string {
	if o == Windows {
		return "windows"
	}
	return "posix"
}

// IsWindows reports whether o is Windows
func (o OS) IsWindows() bool {
	return o == Windows
}

// Separator returns the path separator for o
func (o OS) Separator() string {
	if o == Windows {
		return `\`
	}
	return "/"
}

// ExecutableExt returns the suffix node package managers give bin shims on o
func (o OS) ExecutableExt() string {
	if o == Windows {
		return ".cmd"
	}
	return ""
}

// Normalize cleans p and rewrites it with o's separator.
// The empty string stays empty.
func (o OS) Normalize(p string) string {
	if p == "" {
		return ""
	}
	if o != Windows {
		return path.Clean(p)
	}

	slashed := strings.ReplaceAll(p, `\`, "/")

	// UNC prefix (//server/share) would collapse under path.Clean
	unc := strings.HasPrefix(slashed, "//") && !strings.HasPrefix(slashed, "///")
	if unc {
		slashed = slashed[1:]
	}

	// Keep the drive letter out of the way so "C:.." never cleans past it
	volume := ""
	if len(slashed) >= 2 && slashed[1] == ':' && isLetter(slashed[0]) {
		volume, slashed = slashed[:2], slashed[2:]
	}

	cleaned := slashed
	if cleaned != "" {
		cleaned = path.Clean(cleaned)
	}
	if volume != "" && cleaned == "." {
		cleaned = ""
	}
	if unc {
		cleaned = "/" + cleaned
	}

	return volume + strings.ReplaceAll(cleaned, "/", `\`)
}

// Join joins the non-empty elements with o's separator and normalizes the result
func (o OS) Join(elem ...string) string {
	parts := make([]string, 0, len(elem))
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return o.Normalize(strings.Join(parts, o.Separator()))
}

// IsAbs reports whether p is absolute under o's conventions
func (o OS) IsAbs(p string) bool {
	if o != Windows {
		return strings.HasPrefix(p, "/")
	}
	slashed := strings.ReplaceAll(p, `\`, "/")
	if strings.HasPrefix(slashed, "//") {
		return true
	}
	return len(slashed) >= 3 && slashed[1] == ':' && isLetter(slashed[0]) && slashed[2] == '/'
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
