// Package configutil loads json5 configuration files with optional
// machine-local overrides. A file named `config.json5` may sit next to
// a `config.local.json5` whose values take priority, which keeps
// per-developer credentials out of checked-in defaults.
package configutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

func localPath(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

// readLayer decodes one file into `into`. A missing or empty file is
// not an error, it just reports found=false.
func readLayer[T any](path string, into *T) (bool, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	if err := json5.Unmarshal(contents, into); err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return true, nil
}

// ReadConfig loads `name` and merges `<name>.local.<ext>` over it when
// present. Returns os.ErrNotExist when neither file exists.
func ReadConfig[T any](name string) (T, error) {
	var out T
	found, err := readLayer(name, &out)
	if err != nil {
		return out, err
	}

	local := localPath(name)
	var override T
	localFound, err := readLayer(local, &override)
	if err != nil {
		return out, err
	}
	if localFound {
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		slog.Info("merged local config overrides", "path", local)
	}

	if !found && !localFound {
		return out, os.ErrNotExist
	}
	return out, nil
}

// ReadRecursively walks from the working directory toward the
// filesystem root looking for the named config file, so commands work
// from any subdirectory of a checkout.
func ReadRecursively[T any](name string) (T, error) {
	var none T

	dir, err := os.Getwd()
	if err != nil {
		return none, err
	}
	for {
		config, err := ReadConfig[T](filepath.Join(dir, name))
		if err == nil {
			return config, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return none, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return none, os.ErrNotExist
		}
		dir = parent
	}
}
