package cli

import (
	"os"
	"path/filepath"
)

// AppPaths is an interface to determine application specific paths for configuration
// and logging/tracing.
type AppPaths interface {
	ConfigDir() string
	LogDir() string
}

// DefaultAppPaths returns an AppPaths instance with platform-dependent defaults
// set, given appTag. appTag is a string specific to a client's application to identify it.
func DefaultAppPaths(appTag string) (AppPaths, error) {
	return appHome(appTag)
}

type appPaths struct {
	tag  string
	home string
}

var _ AppPaths = appPaths{}

// historyFile returns the location of the REPL history within the config
// directory, creating the directory if necessary. It returns "" if there
// is no usable directory.
func historyFile(paths AppPaths) string {
	if paths == nil || paths.ConfigDir() == "" {
		return ""
	}
	if err := os.MkdirAll(paths.ConfigDir(), 0o755); err != nil {
		tracer().Errorf("cannot create config directory: %v", err)
		return ""
	}
	return filepath.Join(paths.ConfigDir(), "repl-history")
}
