package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nonopt/internal/adapters/config"
	"go.trai.ch/nonopt/internal/core/domain"
	"go.trai.ch/nonopt/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoad_CustomPrefixes(t *testing.T) {
	path := writeHookfile(t, t.TempDir(), `
version: "1"
prefixes:
  - dom/webgpu/
  - gfx/layers/
`)

	rule, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"dom/webgpu/", "gfx/layers/"}, rule.Prefixes())
	assert.Equal(t, domain.OptimizeKey, rule.Key())
}

func TestLoad_DefaultsWhenFieldsOmitted(t *testing.T) {
	path := writeHookfile(t, t.TempDir(), `version: "1"`)

	rule, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRule().Prefixes(), rule.Prefixes())
}

func TestLoad_CustomKey(t *testing.T) {
	path := writeHookfile(t, t.TempDir(), `
version: "1"
key: RUSTC_OPT_LEVEL
prefixes: ["third_party/rust/naga"]
`)

	rule, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "RUSTC_OPT_LEVEL", rule.Key())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
		errContains string
	}{
		{
			name:        "explicit empty prefix list",
			content:     "prefixes: []\n",
			expectedErr: domain.ErrEmptyPrefixList,
		},
		{
			name:        "absolute prefix",
			content:     "prefixes: [\"/dom/webgpu\"]\n",
			expectedErr: domain.ErrMalformedPrefix,
		},
		{
			name:        "invalid yaml",
			content:     "prefixes: [unterminated\n",
			errContains: "failed to parse hook file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeHookfile(t, t.TempDir(), tt.content)

			rule, err := config.Load(path)
			require.Error(t, err)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
			}
			if tt.errContains != "" {
				require.ErrorContains(t, err, tt.errContains)
			}
			assert.Nil(t, rule)
		})
	}
}

func TestFileRuleLoader_MissingFileUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).Times(1)

	rule, err := config.NewLoader(mockLogger).Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultRule().Prefixes(), rule.Prefixes())
}

func TestFileRuleLoader_ReadsFromCwd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	dir := t.TempDir()
	writeHookfile(t, dir, "prefixes: [\"gfx/wgpu_bindings\"]\n")

	rule, err := config.NewLoader(mockLogger).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"gfx/wgpu_bindings"}, rule.Prefixes())
}

func TestFileRuleLoader_AbsoluteFilename(t *testing.T) {
	dir := t.TempDir()
	path := writeHookfile(t, dir, "prefixes: [\"dom/webgpu/\"]\n")

	loader := &config.FileRuleLoader{Filename: path}
	rule, err := loader.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{"dom/webgpu/"}, rule.Prefixes())
}

func TestFileRuleLoader_LoadFileMissing(t *testing.T) {
	_, err := config.NewLoader(nil).LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// Helpers.

func writeHookfile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
