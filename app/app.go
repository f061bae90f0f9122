package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

const (
	cfgFile     = "zoo.yml"
	testCfgFile = "zoo_test.yml"
	envPrefix   = "ZOO"
)

var ErrConfigNotFound = errors.New("can not find zoo configuration")

var (
	cfg    *viper.Viper
	cfgErr error
	once   sync.Once
)

// Config returns the zoo configuration, loaded once per process.
//
// Rules:
//  1. Under `go test`, zoo_test.yml is used; otherwise zoo.yml.
//  2. The file is looked up in the project root (nearest directory holding
//     go.mod) and its ./config, then in the working directory and its ./config.
//
// Values can be overridden by ZOO_ prefixed environment variables.
func Config() mo.Result[*viper.Viper] {
	once.Do(func() {
		cfg, cfgErr = discover(lo.Ternary(isTestProcess(), testCfgFile, cfgFile))
	})
	return mo.TupleToResult(cfg, cfgErr)
}

// Load reads a single configuration file, bypassing discovery.
func Load(path string) mo.Result[*viper.Viper] {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return mo.Err[*viper.Viper](fmt.Errorf("read %s: %w", path, err))
	}
	return mo.Ok(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func discover(name string) (*viper.Viper, error) {
	for _, dir := range searchPaths() {
		cand := filepath.Join(dir, name)
		if _, err := os.Stat(cand); err != nil {
			continue
		}
		rs := Load(cand)
		if rs.IsError() {
			return nil, rs.Error()
		}
		return rs.MustGet(), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, name)
}

// searchPaths lists candidate directories, project root first, without
// duplicates. If the working directory can't be determined it falls back to
// "." and "./config".
func searchPaths() []string {
	cwd, err := os.Getwd()
	if err != nil {
		return []string{".", "config"}
	}
	var dirs []string
	if root, ok := findProjectRoot(cwd); ok {
		dirs = append(dirs, root, filepath.Join(root, "config"))
	}
	dirs = append(dirs, cwd, filepath.Join(cwd, "config"))
	return lo.Uniq(dirs)
}

// findProjectRoot walks upward from `start` until it finds a directory containing a go.mod.
// It returns (root, true) if found, otherwise ("", false).
//
// `go test` runs each package with its own directory as the working directory,
// so ./app and ./roster tests would each look for zoo_test.yml in a different
// place. Anchoring the lookup at the module root lets both find the one file.
// Only the existence of go.mod is checked; it is never parsed.
func findProjectRoot(start string) (string, bool) {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// isTestProcess detects whether we are running under `go test`, so that
// Config picks zoo_test.yml and tests never read a developer's zoo.yml.
func isTestProcess() bool {
	// The test binary is invoked with flags like `-test.v`, `-test.run`.
	// That is the most reliable signal.
	if lo.ContainsBy(os.Args, func(a string) bool {
		return strings.HasPrefix(a, "-test.")
	}) {
		return true
	}
	// Fallback: scan stack frames for *_test.go. This covers calls made before
	// the flags are visible to us, such as from a test file's init().
	const maxFrames = 256
	pcs := make([]uintptr, maxFrames)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if strings.HasSuffix(f.File, "_test.go") {
			return true
		}
		if !more {
			return false
		}
	}
}
