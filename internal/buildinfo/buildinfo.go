// Package buildinfo carries values set at link time with
// -ldflags "-X github.com/dmitrijs2005/imagekeeper/internal/buildinfo.Version=...".
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// String is the one-line form used by --version.
func String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", Version, Date, Commit)
}

// PrintBuildData writes the build values, one per line.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
