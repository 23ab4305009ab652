// ABOUTME: Standard filesystem paths for segswitch configuration
// ABOUTME: Resolves ~/.segswitch/ for global and .segswitch/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".segswitch"
	projectDirName = ".segswitch"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.segswitch/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.segswitch/ in projectRoot).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// ThemesDir returns the directory searched for JSON theme files.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// LogFile returns the default log file for interactive sessions.
func LogFile() string {
	return filepath.Join(GlobalDir(), "segswitch.log")
}

// Files returns every config file Load reads, global first.
func Files(projectRoot string) []string {
	return []string{GlobalConfigFile(), ProjectConfigFile(projectRoot)}
}

// EnsureDir creates a directory and all parents if they don't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
