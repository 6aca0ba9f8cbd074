package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/UnendingLoop/ValidateOutput/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	goodFile := filepath.Join(dir, "node.yaml")
	require.NoError(t, os.WriteFile(goodFile, []byte("address: \":9090\"\nmax_content_bytes: 1024\nlog_level: debug\n"), 0o600))
	brokenFile := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(brokenFile, []byte("address: [\n"), 0o600))

	cases := []struct {
		name    string
		path    string
		env     map[string]string
		want    *config.NodeConfig
		wantErr string
	}{
		{
			name: "Positive - defaults",
			want: config.DefaultConfig(),
		},
		{
			name: "Positive - missing file from env keeps defaults",
			env:  map[string]string{config.EnvConfig: filepath.Join(dir, "absent.yaml")},
			want: config.DefaultConfig(),
		},
		{
			name:    "Negative - missing explicit file",
			path:    filepath.Join(dir, "absent.yaml"),
			wantErr: "failed to load config file",
		},
		{
			name: "Positive - file",
			path: goodFile,
			want: &config.NodeConfig{Address: ":9090", MaxContentBytes: 1024, LogLevel: "debug"},
		},
		{
			name: "Positive - file from env, env overrides file",
			env: map[string]string{
				config.EnvConfig:          goodFile,
				config.EnvAddress:         "127.0.0.1:7000",
				config.EnvMaxContentBytes: "2048",
			},
			want: &config.NodeConfig{Address: "127.0.0.1:7000", MaxContentBytes: 2048, LogLevel: "debug"},
		},
		{
			name:    "Negative - broken yaml",
			path:    brokenFile,
			wantErr: "failed to load config file",
		},
		{
			name:    "Negative - bad limit in env",
			env:     map[string]string{config.EnvMaxContentBytes: "lots"},
			wantErr: config.EnvMaxContentBytes,
		},
		{
			name:    "Negative - non-positive limit",
			env:     map[string]string{config.EnvMaxContentBytes: "0"},
			wantErr: "max_content_bytes must be positive",
		},
		{
			name:    "Negative - limit near MaxInt64",
			env:     map[string]string{config.EnvMaxContentBytes: "9223372036854775000"},
			wantErr: "max_content_bytes must not exceed",
		},
		{
			name: "Positive - limit at the upper bound",
			env:  map[string]string{config.EnvMaxContentBytes: "1073741824"},
			want: &config.NodeConfig{Address: config.DefaultAddress, MaxContentBytes: config.MaxContentBytesLimit, LogLevel: "INFO"},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }

			cfg, err := config.Load(tt.path, getenv)

			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, cfg)
		})
	}
}
