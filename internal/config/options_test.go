package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/refolder/internal/naming"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "*", opts.Pattern)
	assert.Equal(t, "group", opts.Prefix)
	assert.Equal(t, naming.StyleNumbers, opts.Suffix)
	assert.False(t, opts.Recursive)
	assert.False(t, opts.DryRun)
	assert.False(t, opts.Force)
}

func TestOptions_Validate(t *testing.T) {
	valid := DefaultOptions()
	valid.Root = "/data"
	valid.Subfolders = 4

	tests := []struct {
		name    string
		mutate  func(o *Options)
		wantErr bool
	}{
		{"valid", func(o *Options) {}, false},
		{"missing root", func(o *Options) { o.Root = "" }, true},
		{"zero subfolders", func(o *Options) { o.Subfolders = 0 }, true},
		{"negative subfolders", func(o *Options) { o.Subfolders = -2 }, true},
		{"none with many folders", func(o *Options) { o.Suffix = naming.StyleNone }, true},
		{"none with one folder", func(o *Options) { o.Suffix = naming.StyleNone; o.Subfolders = 1 }, false},
		{"prefix with separator", func(o *Options) { o.Prefix = "out/group" }, true},
		{"unknown suffix", func(o *Options) { o.Suffix = "roman" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOptions_Matcher(t *testing.T) {
	opts := DefaultOptions()
	opts.Pattern = "*.TXT"
	require.True(t, opts.Matcher().Match("file1.txt"))

	opts.CaseSensitive = true
	require.False(t, opts.Matcher().Match("file1.txt"))
}

func TestOptions_Mode(t *testing.T) {
	opts := DefaultOptions()
	assert.Equal(t, "applied", opts.Mode())
	opts.DryRun = true
	assert.Equal(t, "dry-run", opts.Mode())
}
