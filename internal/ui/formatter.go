package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"jestpath/internal/config"
	"jestpath/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to color.Output
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg, out: color.Output}
}

// SetOutput redirects the formatter, mainly for tests
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintValue prints a single answer, the way an editor integration consumes it
func (f *Formatter) PrintValue(value string) {
	fmt.Fprintln(f.out, value)
}

// PrintJSON prints v as indented JSON
func (f *Formatter) PrintJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(f.out, string(data))
	return err
}

// PrintResolution prints one resolution as a table, or as JSON with --json
func (f *Formatter) PrintResolution(res domain.Resolution) error {
	if f.config.JSON {
		return f.PrintJSON(res)
	}

	cyan := color.New(color.FgCyan)
	cyan.Fprintln(f.out, "┌──────────────────────┬──────────────────────────────────────────")
	f.row("Root", res.RootPath, color.FgWhite)
	f.row("Platform", res.Platform, color.FgWhite)
	f.row("Runner command", res.RunnerCommand, color.FgGreen)
	f.row("Config path", orNone(res.ConfigPath), color.FgWhite)
	if res.HasMetadata() {
		f.row("Jest package", res.PackageMetadataPath, color.FgGreen)
		f.row("Jest version", orNone(res.JestVersion), color.FgWhite)
	} else {
		f.row("Jest package", "not installed", color.FgRed)
	}
	f.row("Scaffolded", fmt.Sprintf("%t", res.Scaffolded), color.FgYellow)
	cyan.Fprintln(f.out, "└──────────────────────┴──────────────────────────────────────────")
	return nil
}

// PrintResolutions prints a tree of projects found by a scan
func (f *Formatter) PrintResolutions(workspace string, resolutions []domain.Resolution) error {
	if f.config.JSON {
		return f.PrintJSON(resolutions)
	}

	color.New(color.FgGreen).Fprintf(f.out, "Found %d project(s):\n", len(resolutions))
	for i, res := range resolutions {
		connector := "├── "
		if i == len(resolutions)-1 {
			connector = "└── "
		}

		name := res.RootPath
		if rel, err := filepath.Rel(workspace, res.RootPath); err == nil {
			name = rel
		}

		marker := color.GreenString("jest %s", orNone(res.JestVersion))
		if !res.HasMetadata() {
			marker = color.RedString("jest missing")
		}
		fmt.Fprintf(f.out, "%s%s  %s  %s\n", connector, color.CyanString(name), color.WhiteString(res.RunnerCommand), marker)
	}
	return nil
}

// PrintReport prints a stored report with its summary
func (f *Formatter) PrintReport(report *domain.Report) error {
	if f.config.JSON {
		return f.PrintJSON(report)
	}

	meta := report.Meta
	fmt.Fprintf(f.out, "Report from %s (%s)\n", meta.Timestamp, meta.Platform)
	fmt.Fprintf(f.out, "  projects: %d | with jest: %s | scaffolded: %s\n",
		meta.TotalProjects,
		color.GreenString("%d", meta.ProjectsWithJest),
		color.YellowString("%d", meta.ScaffoldedProjects),
	)
	for _, res := range report.Resolutions {
		if err := f.PrintResolution(res); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) row(label, value string, attr color.Attribute) {
	fmt.Fprintf(f.out, "│ %-20s │ %s\n", label, color.New(attr).Sprint(value))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
