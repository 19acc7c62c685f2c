package version

import (
	"fmt"
	"os/exec"
	"strings"
)

// UVBinaryInfo contains uv binary detection information.
type UVBinaryInfo struct {
	// Version is the uv binary version.
	Version string `json:"version"`

	// Path is the path to the uv binary.
	Path string `json:"path"`

	// Found indicates if the uv binary was found on PATH.
	Found bool `json:"found"`
}

// DetectUV looks up the uv binary on PATH and queries its version.
// An empty uvPath means "uv".
func DetectUV(uvPath string) UVBinaryInfo {
	if uvPath == "" {
		uvPath = "uv"
	}

	resolved, err := exec.LookPath(uvPath)
	if err != nil {
		return UVBinaryInfo{Found: false}
	}

	info := UVBinaryInfo{
		Path:  resolved,
		Found: true,
	}

	out, err := exec.Command(resolved, "--version").Output()
	if err != nil {
		return info
	}

	info.Version = parseUVVersion(string(out))
	return info
}

// parseUVVersion extracts the version from `uv --version` output,
// e.g. "uv 0.5.14 (Homebrew 2024-12-23)" -> "0.5.14".
func parseUVVersion(out string) string {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// String returns a human-readable uv binary info string.
func (u UVBinaryInfo) String() string {
	if !u.Found {
		return "  Binary Version: not found\n  Binary Path:    -"
	}

	return fmt.Sprintf("  Binary Version: %s\n  Binary Path:    %s", u.Version, u.Path)
}
