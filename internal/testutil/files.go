package testutil

import (
	"os"
	"path/filepath"
)

// TB is the part of testing.TB the helpers need; GinkgoT satisfies it too
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// WriteFiles creates files under root from a map of slash-separated relative paths to contents
func WriteFiles(t TB, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

// ReadFile returns the content of root/rel or fails the test
func ReadFile(t TB, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}
