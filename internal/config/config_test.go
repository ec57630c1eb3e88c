package config

import (
	"os"
	"testing"
	"time"
)

// chdirTemp switches to a temp directory to avoid loading a real .env.
func chdirTemp(t *testing.T) {
	t.Helper()
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	})
}

func TestLoad_Success(t *testing.T) {
	chdirTemp(t)

	reqs := map[string]string{
		"SERVER_PORT":               "8080",
		"REDIS_ADDR":                "localhost:6379",
		"REDIS_PASSWORD":            "secret",
		"REDIS_DB":                  "2",
		"CATALOG_PRIMARY_KEY":       "main",
		"CATALOG_BACKUP_KEY":        "spare",
		"CATALOG_LATENCY_MS":        "50",
		"LOCAL_STORAGE_QUOTA_BYTES": "1024",
		"MESSAGE_SUCCESS_SECONDS":   "1",
		"MESSAGE_ERROR_SECONDS":     "2",
	}
	for k, v := range reqs {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.RedisAddr != "localhost:6379" || cfg.RedisPassword != "secret" || cfg.RedisDB != 2 {
		t.Errorf("Redis: got %q %q %d", cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	}
	if cfg.PrimaryKey != "main" || cfg.BackupKey != "spare" {
		t.Errorf("keys: got %q %q", cfg.PrimaryKey, cfg.BackupKey)
	}
	if cfg.Latency != 50*time.Millisecond {
		t.Errorf("Latency: expected %v, got %v", 50*time.Millisecond, cfg.Latency)
	}
	if cfg.LocalStorageQuota != 1024 {
		t.Errorf("LocalStorageQuota: expected 1024, got %d", cfg.LocalStorageQuota)
	}
	if cfg.SuccessMessageDuration != time.Second || cfg.ErrorMessageDuration != 2*time.Second {
		t.Errorf("message durations: got %v %v", cfg.SuccessMessageDuration, cfg.ErrorMessageDuration)
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("SERVER_PORT", "8080")
	for _, k := range []string{"REDIS_ADDR", "REDIS_DB", "CATALOG_PRIMARY_KEY", "CATALOG_BACKUP_KEY",
		"CATALOG_LATENCY_MS", "LOCAL_STORAGE_QUOTA_BYTES", "MESSAGE_SUCCESS_SECONDS", "MESSAGE_ERROR_SECONDS"} {
		t.Setenv(k, "")
		if err := os.Unsetenv(k); err != nil {
			t.Fatalf("could not unset key %s in env: %v", k, err)
		}
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.RedisAddr != "" {
		t.Errorf("RedisAddr: expected empty, got %q", cfg.RedisAddr)
	}
	if cfg.PrimaryKey != "media_catalog" || cfg.BackupKey != "media_catalog_backup" {
		t.Errorf("keys: got %q %q", cfg.PrimaryKey, cfg.BackupKey)
	}
	if cfg.Latency != 300*time.Millisecond {
		t.Errorf("Latency: expected 300ms, got %v", cfg.Latency)
	}
	if cfg.LocalStorageQuota != 5*1024*1024 {
		t.Errorf("LocalStorageQuota: expected 5 MiB, got %d", cfg.LocalStorageQuota)
	}
	if cfg.SuccessMessageDuration != 3*time.Second || cfg.ErrorMessageDuration != 5*time.Second {
		t.Errorf("message durations: got %v %v", cfg.SuccessMessageDuration, cfg.ErrorMessageDuration)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		unset   string
		wantErr string
	}{
		{
			name:    "missing port",
			env:     map[string]string{},
			unset:   "SERVER_PORT",
			wantErr: "SERVER_PORT is required",
		},
		{
			name:    "negative latency",
			env:     map[string]string{"SERVER_PORT": "8080", "CATALOG_LATENCY_MS": "-1"},
			wantErr: "CATALOG_LATENCY_MS must not be negative",
		},
		{
			name:    "same slot keys",
			env:     map[string]string{"SERVER_PORT": "8080", "CATALOG_PRIMARY_KEY": "k", "CATALOG_BACKUP_KEY": "k"},
			wantErr: "CATALOG_PRIMARY_KEY and CATALOG_BACKUP_KEY must differ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chdirTemp(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			if tc.unset != "" {
				t.Setenv(tc.unset, "")
				if err := os.Unsetenv(tc.unset); err != nil {
					t.Fatalf("could not unset key %s in env: %v", tc.unset, err)
				}
			}

			cfg, err := Load()
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if err.Error() != tc.wantErr {
				t.Errorf("error = %q; want %q", err.Error(), tc.wantErr)
			}
			if cfg != nil {
				t.Errorf("expected cfg nil on error, got %#v", cfg)
			}
		})
	}
}
