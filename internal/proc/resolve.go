package proc

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/lineprobe/lineprobe-go/internal/errors"
)

const (
	// ProbePathEnv is the environment variable consulted for the probe
	// binary path when no explicit path is configured.
	ProbePathEnv = "LINEPROBE_BIN"

	// DefaultProbePath is the relative path tried last, matching a probe
	// binary built next to the test suite.
	DefaultProbePath = "./probe"
)

// Resolve locates the probe binary.
//
// An explicit path is used alone; likewise a path from LINEPROBE_BIN. Only
// when neither is set is the default relative path tried. Returns
// *errors.ProbeNotFoundError naming what was searched.
func Resolve(explicit string, log *slog.Logger) (string, error) {
	// If an explicit path is provided, use it and only it.
	if explicit != "" {
		log.Debug("using explicit probe path", "path", explicit)

		if path, err := lookup(explicit); err == nil {
			return path, nil
		}

		log.Warn("explicit probe path not found", "path", explicit)

		return "", &errors.ProbeNotFoundError{SearchedPaths: []string{explicit}}
	}

	if env := os.Getenv(ProbePathEnv); env != "" {
		log.Debug("using probe path from environment", "var", ProbePathEnv, "path", env)

		if path, err := lookup(env); err == nil {
			return path, nil
		}

		log.Warn("probe path from environment not found", "var", ProbePathEnv, "path", env)

		return "", &errors.ProbeNotFoundError{SearchedPaths: []string{"$" + ProbePathEnv + " (" + env + ")"}}
	}

	if path, err := lookup(DefaultProbePath); err == nil {
		log.Debug("using default probe path", "path", path)

		return path, nil
	}

	log.Warn("probe binary not found", "searched_path", DefaultProbePath, "hint", "set "+ProbePathEnv)

	return "", &errors.ProbeNotFoundError{SearchedPaths: []string{"$" + ProbePathEnv, DefaultProbePath}}
}

// lookup resolves one candidate: bare names go through the system PATH,
// anything with a path separator is checked directly.
func lookup(candidate string) (string, error) {
	if filepath.Base(candidate) == candidate {
		return exec.LookPath(candidate)
	}

	if _, err := os.Stat(candidate); err != nil {
		return "", err
	}

	return candidate, nil
}
