package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Endpoint:      "http://0.0.0.0:5000/files",
		Timeout:       0,
		LogLevel:      "info",
		ArchiveBucket: "",
		ArchivePrefix: "uploads/",
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("IMAGEUPLOAD_ENDPOINT", "http://files.internal:8080/files")
	t.Setenv("IMAGEUPLOAD_TIMEOUT", "30s")
	t.Setenv("IMAGEUPLOAD_LOG_LEVEL", "debug")
	t.Setenv("IMAGEUPLOAD_ARCHIVE_BUCKET", "image-archive")
	t.Setenv("IMAGEUPLOAD_ARCHIVE_PREFIX", "raw/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Config{
		Endpoint:      "http://files.internal:8080/files",
		Timeout:       30 * time.Second,
		LogLevel:      "debug",
		ArchiveBucket: "image-archive",
		ArchivePrefix: "raw/",
	}
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv("IMAGEUPLOAD_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable timeout")
	}
}

func TestLoadTimeoutUnits(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "2m", 2 * time.Minute, false},
		{"bare zero", "0", 0, false},
		{"bare integer", "30", 0, true},
		{"padded integer", " 5 ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("IMAGEUPLOAD_TIMEOUT", tt.value)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got timeout %v", cfg.Timeout)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Timeout != tt.want {
				t.Errorf("Timeout = %v, want %v", cfg.Timeout, tt.want)
			}
		})
	}
}
