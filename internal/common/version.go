package common

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Set via -ldflags "-X github.com/bobmcallan/timcheck/internal/common.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// FullVersion returns the version with its commit.
func FullVersion() string {
	return Version + " (commit: " + GitCommit + ")"
}

// ResolveVersion fills values left unset by ldflags from a .version file
// (version: / commit: lines) next to the executable.
func ResolveVersion() {
	exe, err := os.Executable()
	if err != nil {
		return
	}
	applyVersionFile(filepath.Join(filepath.Dir(exe), ".version"))
}

func applyVersionFile(path string) {
	values, err := godotenv.Read(path)
	if err != nil {
		return
	}
	if v := strings.TrimSpace(values["version"]); v != "" && Version == "dev" {
		Version = v
	}
	if v := strings.TrimSpace(values["commit"]); v != "" && GitCommit == "unknown" {
		GitCommit = v
	}
}
