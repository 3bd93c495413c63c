// Package settings provides build metadata, per-run options and context
// helpers shared by the listmenu CLI and its packages.
package settings

import (
	"os"

	"github.com/mattn/go-isatty"
)

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "listmenu"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds the commit hash, version and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds options for a single execution of the CLI.
type Run struct {
	MinLogLevel int8
	ConfigFile  string
	HistoryDB   string
	IsQuiet     bool
	NoColor     bool
	ExitOnError bool
}

// NewCliParams returns the defaults used by the CLI.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		IsQuiet:     false,
		NoColor:     false,
		ExitOnError: true,
	}
}

// UseColor reports whether output written to f should carry ANSI styling.
// Color is off when NoColor is set, when NO_COLOR is present in the
// environment, or when f is not a terminal.
func (r *Run) UseColor(f *os.File) bool {
	if r.NoColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// LogLevel maps a debug switch to a zap level. Debug enables the menu's
// V(1) transition logs and V(2) page-fit logs.
func LogLevel(debug bool) int8 {
	if debug {
		return -2
	}
	return 0
}
