package persist

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

type blobStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

func checkRoundTrip(t *testing.T, s blobStore) {
	t.Helper()

	data, err := s.Load()
	if err != nil {
		t.Fatalf("Expected no error on empty load, got %v", err)
	}
	if data != nil {
		t.Fatalf("Expected nil payload before first save, got %q", data)
	}

	payload := []byte(`[{"id":1}]`)
	if err := s.Save(payload); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err = s.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("Expected %q, got %q", payload, data)
	}

	replaced := []byte(`[]`)
	if err := s.Save(replaced); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}
	data, _ = s.Load()
	if !bytes.Equal(data, replaced) {
		t.Errorf("Expected %q after overwrite, got %q", replaced, data)
	}
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	checkRoundTrip(t, m)
	if m.Saves() != 2 {
		t.Errorf("Expected 2 saves, got %d", m.Saves())
	}
}

func TestMemory_LoadReturnsCopy(t *testing.T) {
	m := NewMemoryWith([]byte("abc"))
	data, _ := m.Load()
	data[0] = 'x'
	again, _ := m.Load()
	if string(again) != "abc" {
		t.Errorf("Stored payload was mutated: %q", again)
	}
}

func TestFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "layout.json")
	checkRoundTrip(t, NewFile(path))

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the layout file, found %d entries", len(entries))
	}
}

func TestSQLite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chemviz.db")
	s, err := OpenSQLite(path, "")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer s.Close()

	checkRoundTrip(t, s)
}

func TestSQLite_KeysAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chemviz.db")
	a, err := OpenSQLite(path, "a")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer a.Close()
	b, err := OpenSQLite(path, "b")
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer b.Close()

	if err := a.Save([]byte("one")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := b.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if data != nil {
		t.Errorf("Expected key b to be empty, got %q", data)
	}
}
