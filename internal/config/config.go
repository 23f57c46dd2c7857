package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the folder, next to the executable, that holds both inputs
	// and outputs.
	DirName = "pictures"
	// Quality is the JPEG quality used for every conversion.
	Quality = 90
	// TargetExt is appended to the base name of each converted file.
	TargetExt = ".jpg"
)

// Config carries the fixed parameters of a run. There are no flags or
// environment overrides; Default is the only constructor used by the CLI.
type Config struct {
	Dir       string
	Quality   int
	TargetExt string
	// SourceExts are matched exactly, so ".Heic" is not a source extension.
	SourceExts []string
	// SkipExts are matched against the lowercased extension.
	SkipExts []string
}

// Default resolves the pictures folder relative to the running executable.
func Default() (Config, error) {
	exe, err := os.Executable()
	if err != nil {
		return Config{}, fmt.Errorf("locate executable: %w", err)
	}
	if resolved, evalErr := filepath.EvalSymlinks(exe); evalErr == nil {
		exe = resolved
	}
	return ForDir(filepath.Join(filepath.Dir(exe), DirName)), nil
}

// ForDir returns the fixed settings bound to an explicit directory.
func ForDir(dir string) Config {
	return Config{
		Dir:        dir,
		Quality:    Quality,
		TargetExt:  TargetExt,
		SourceExts: []string{".heic", ".HEIC"},
		SkipExts:   []string{".jpg", ".jpeg", ".png"},
	}
}

// EnsureDir creates the pictures folder if it does not exist yet.
func (c Config) EnsureDir() error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", c.Dir, err)
	}
	return nil
}
