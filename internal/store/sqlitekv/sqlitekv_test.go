package sqlitekv

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSetGetAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "checklist.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok, err := s.Get("checklist-tasks"); err != nil || ok {
		t.Fatalf("Get on empty db = (ok=%v, err=%v)", ok, err)
	}
	if err := s.Set("checklist-tasks", `[1]`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set("checklist-tasks", `[2]`); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()
	v, ok, err := s.Get("checklist-tasks")
	if err != nil || !ok {
		t.Fatalf("Get after reopen = (%q, %v, %v)", v, ok, err)
	}
	if v != "[2]" {
		t.Errorf("Get = %q, want [2]", v)
	}
}

func TestOpenTakesPathLiterally(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
	s, err := Open(filepath.Join("~user", "checklist.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()
	if _, err := os.Stat(filepath.Join(dir, "~user", "checklist.db")); err != nil {
		t.Errorf("database not created under the literal path: %v", err)
	}
}
