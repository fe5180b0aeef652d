package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/danieljhkim/refolder/internal/naming"
)

// File is the on-disk defaults file. Unset keys leave the built-in defaults
// in place; command-line flags override both.
type File struct {
	Matching      *string `toml:"matching"`
	Prefix        *string `toml:"prefix"`
	Suffix        *string `toml:"suffix"`
	Recursive     *bool   `toml:"recursive"`
	FailFast      *bool   `toml:"fail_fast"`
	CaseSensitive *bool   `toml:"case_sensitive"`
}

// LoadFile reads the defaults file at path. A missing file is not an error
// unless required is set (an explicitly requested --config path).
func LoadFile(path string, required bool, logger *zap.Logger) (*File, error) {
	f := &File{}
	if path == "" {
		return f, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			logger.Debug("no defaults file found", zap.String("path", path))
			return f, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	meta, err := toml.Decode(string(content), f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		logger.Warn("unrecognized keys in config file", zap.String("path", path), zap.Strings("keys", keys))
	}

	logger.Debug("loaded defaults file", zap.String("path", path))
	return f, nil
}

// Apply layers the file's values over opts and returns the result.
func (f *File) Apply(opts Options) (Options, error) {
	if f == nil {
		return opts, nil
	}
	if f.Matching != nil {
		opts.Pattern = *f.Matching
	}
	if f.Prefix != nil {
		opts.Prefix = *f.Prefix
	}
	if f.Suffix != nil {
		style, err := naming.ParseStyle(*f.Suffix)
		if err != nil {
			return opts, fmt.Errorf("config file: %w", err)
		}
		opts.Suffix = style
	}
	if f.Recursive != nil {
		opts.Recursive = *f.Recursive
	}
	if f.FailFast != nil {
		opts.FailFast = *f.FailFast
	}
	if f.CaseSensitive != nil {
		opts.CaseSensitive = *f.CaseSensitive
	}
	return opts, nil
}
