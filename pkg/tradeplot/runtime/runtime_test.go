package runtime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plotly.min.js")
	if err := os.WriteFile(path, []byte("/* plotly */"), 0644); err != nil {
		t.Fatalf("Failed to write bundle: %v", err)
	}

	data, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "/* plotly */" {
		t.Errorf("Unexpected bundle content %q", data)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.js")); !errors.Is(err, ErrBundleNotFound) {
		t.Errorf("Expected ErrBundleNotFound, got %v", err)
	}

	empty := filepath.Join(dir, "empty.js")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatalf("Failed to write bundle: %v", err)
	}
	if _, err := Load(empty); !errors.Is(err, ErrEmptyBundle) {
		t.Errorf("Expected ErrEmptyBundle, got %v", err)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/plotly.min.js" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte("window.Plotly={};"))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "assets", "plotly.min.js")
	n, err := Fetch(context.Background(), srv.Client(), srv.URL+"/plotly.min.js", path)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if n != int64(len("window.Plotly={};")) {
		t.Errorf("Expected %d bytes, got %d", len("window.Plotly={};"), n)
	}

	data, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Fetch failed: %v", err)
	}
	if string(data) != "window.Plotly={};" {
		t.Errorf("Unexpected content %q", data)
	}

	if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/missing.js", path); err == nil {
		t.Errorf("Expected error for 404")
	}
	// A failed fetch leaves the previous bundle in place.
	if data, _ := Load(path); string(data) != "window.Plotly={};" {
		t.Errorf("Bundle was clobbered by a failed fetch: %q", data)
	}
}
