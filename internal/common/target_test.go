package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveBaseURL_FromEnvFile(t *testing.T) {
	path := writeEnvFile(t, "WDS_SOCKET_PORT=443\nREACT_APP_BACKEND_URL=https://tim.example.com/\n")

	got, err := ResolveBaseURL(TargetConfig{EnvFile: path, EnvKey: "REACT_APP_BACKEND_URL"})
	if err != nil {
		t.Fatalf("ResolveBaseURL: %v", err)
	}
	if got != "https://tim.example.com" {
		t.Errorf("base URL = %q, want trailing slash trimmed", got)
	}
}

func TestResolveBaseURL_ValueWithEquals(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL=https://tim.example.com/?a=b\n")

	got, err := ResolveBaseURL(TargetConfig{EnvFile: path, EnvKey: "REACT_APP_BACKEND_URL"})
	if err != nil {
		t.Fatalf("ResolveBaseURL: %v", err)
	}
	if got != "https://tim.example.com/?a=b" {
		t.Errorf("base URL = %q", got)
	}
}

func TestResolveBaseURL_ExplicitWins(t *testing.T) {
	got, err := ResolveBaseURL(TargetConfig{BaseURL: " http://localhost:8001/ ", EnvFile: "/does/not/exist"})
	if err != nil {
		t.Fatalf("ResolveBaseURL: %v", err)
	}
	if got != "http://localhost:8001" {
		t.Errorf("base URL = %q", got)
	}
}

func TestResolveBaseURL_MissingFile(t *testing.T) {
	_, err := ResolveBaseURL(TargetConfig{EnvFile: filepath.Join(t.TempDir(), "nope.env"), EnvKey: "REACT_APP_BACKEND_URL"})
	if !errors.Is(err, ErrBaseURLNotFound) {
		t.Errorf("err = %v, want ErrBaseURLNotFound", err)
	}
}

func TestResolveBaseURL_MissingKey(t *testing.T) {
	path := writeEnvFile(t, "OTHER=1\n")
	_, err := ResolveBaseURL(TargetConfig{EnvFile: path, EnvKey: "REACT_APP_BACKEND_URL"})
	if !errors.Is(err, ErrBaseURLNotFound) {
		t.Errorf("err = %v, want ErrBaseURLNotFound", err)
	}
}

func TestResolveBaseURL_NoEnvFileConfigured(t *testing.T) {
	_, err := ResolveBaseURL(TargetConfig{})
	if !errors.Is(err, ErrBaseURLNotFound) {
		t.Errorf("err = %v, want ErrBaseURLNotFound", err)
	}
}

func TestAPIBase(t *testing.T) {
	if got := APIBase("https://tim.example.com/"); got != "https://tim.example.com/api" {
		t.Errorf("APIBase = %q", got)
	}
}

func TestResolveBaseURL_IgnoresMalformedLines(t *testing.T) {
	for name, content := range map[string]string{
		"bare key":   "GENERATE_SOURCEMAP\nREACT_APP_BACKEND_URL=https://b.example\n",
		"dashed key": "WDS-SOCKET=1\nREACT_APP_BACKEND_URL=https://b.example\n",
		"comment":    "# frontend\n\nREACT_APP_BACKEND_URL=https://b.example\n",
		"quoted":     "REACT_APP_BACKEND_URL=\"https://b.example\"\n",
		"indented":   "  REACT_APP_BACKEND_URL=https://b.example  \n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeEnvFile(t, content)
			got, err := ResolveBaseURL(TargetConfig{EnvFile: path, EnvKey: "REACT_APP_BACKEND_URL"})
			if err != nil {
				t.Fatalf("ResolveBaseURL: %v", err)
			}
			if got != "https://b.example" {
				t.Errorf("base URL = %q, want https://b.example", got)
			}
		})
	}
}

func TestResolveBaseURL_FirstDuplicateWins(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL=https://first\nREACT_APP_BACKEND_URL=https://second\n")

	got, err := ResolveBaseURL(TargetConfig{EnvFile: path, EnvKey: "REACT_APP_BACKEND_URL"})
	if err != nil {
		t.Fatalf("ResolveBaseURL: %v", err)
	}
	if got != "https://first" {
		t.Errorf("base URL = %q, want https://first", got)
	}
}

func TestResolveBaseURL_KeyPrefixNotMatched(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL_OLD=https://old\n")

	_, err := ResolveBaseURL(TargetConfig{EnvFile: path, EnvKey: "REACT_APP_BACKEND_URL"})
	if !errors.Is(err, ErrBaseURLNotFound) {
		t.Errorf("err = %v, want ErrBaseURLNotFound", err)
	}
}

func TestResolveBaseURL_EmptyFirstValue(t *testing.T) {
	path := writeEnvFile(t, "REACT_APP_BACKEND_URL=\nREACT_APP_BACKEND_URL=https://second\n")

	_, err := ResolveBaseURL(TargetConfig{EnvFile: path, EnvKey: "REACT_APP_BACKEND_URL"})
	if !errors.Is(err, ErrBaseURLNotFound) {
		t.Errorf("err = %v, want ErrBaseURLNotFound", err)
	}
}
