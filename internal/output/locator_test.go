package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"codeberg.org/snonux/htmltrans/internal/testutil"
)

func TestPath(t *testing.T) {
	locator := NewLocator("/srv/site/resources", "resources")

	got := locator.Path("es", "a.html")
	want := filepath.Join("/srv/site/resources", "resources_es", "a.html")
	if got != want {
		t.Errorf("Path() = %s, want %s", got, want)
	}

	if locator.DirName("pt-BR") != "resources_pt-BR" {
		t.Errorf("Unexpected directory name: %s", locator.DirName("pt-BR"))
	}
}

func TestEnsureDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "out")
	locator := NewLocator(root, "resources")

	dir, err := locator.EnsureDir("de")
	if err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("Expected directory at %s", dir)
	}

	// Second call must succeed and keep existing content
	testutil.CreateTestFile(t, filepath.Join(dir, "a.html"), []byte("kept"))
	if _, err := locator.EnsureDir("de"); err != nil {
		t.Fatalf("Second EnsureDir failed: %v", err)
	}
	testutil.AssertFileContent(t, filepath.Join(dir, "a.html"), []byte("kept"))
}

func TestEnsureDir_BlockedByFile(t *testing.T) {
	root := t.TempDir()
	testutil.CreateTestFile(t, filepath.Join(root, "resources_fr"), []byte("not a dir"))

	locator := NewLocator(root, "resources")
	if _, err := locator.EnsureDir("fr"); err == nil {
		t.Error("Expected error when a file blocks the language directory")
	}
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	locator := NewLocator(root, "resources")
	locator.EnsureDir("es")

	if locator.Exists("es", "a.html") {
		t.Error("Expected a.html not to exist yet")
	}

	testutil.CreateTestFile(t, locator.Path("es", "a.html"), []byte("<p>hola</p>"))
	if !locator.Exists("es", "a.html") {
		t.Error("Expected a.html to exist")
	}

	// A directory at the output path is not a completed translation
	os.MkdirAll(locator.Path("es", "b.html"), 0755)
	if locator.Exists("es", "b.html") {
		t.Error("Directory must not count as existing output")
	}
}

func TestWrite(t *testing.T) {
	root := t.TempDir()
	locator := NewLocator(root, "resources")
	locator.EnsureDir("es")

	content := "<p>¡Hola, mundo!</p>"
	path, err := locator.Write("es", "a.html", content)
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	testutil.AssertFileContent(t, path, []byte(content))

	info, _ := os.Stat(path)
	if info.Mode().Perm() != 0644 {
		t.Errorf("Expected mode 0644, got %v", info.Mode().Perm())
	}

	entries, _ := os.ReadDir(locator.Dir("es"))
	if len(entries) != 1 {
		t.Errorf("Expected only the output file, found %d entries", len(entries))
	}
}

func TestWrite_NeverOverwrites(t *testing.T) {
	root := t.TempDir()
	locator := NewLocator(root, "resources")
	locator.EnsureDir("es")
	testutil.CreateTestFile(t, locator.Path("es", "a.html"), []byte("original"))

	_, err := locator.Write("es", "a.html", "replacement")
	if !errors.Is(err, ErrExists) {
		t.Errorf("Expected ErrExists, got %v", err)
	}
	testutil.AssertFileContent(t, locator.Path("es", "a.html"), []byte("original"))
}

func TestWrite_MissingDirectory(t *testing.T) {
	locator := NewLocator(filepath.Join(t.TempDir(), "missing"), "resources")

	if _, err := locator.Write("es", "a.html", "x"); err == nil {
		t.Error("Expected error writing into missing directory")
	}
}

func TestWrite_SecondWriteLeavesSingleFile(t *testing.T) {
	root := t.TempDir()
	locator := NewLocator(root, "resources")
	locator.EnsureDir("de")

	if _, err := locator.Write("de", "a.html", "<p>Hallo</p>"); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	if _, err := locator.Write("de", "a.html", "<p>Servus</p>"); !errors.Is(err, ErrExists) {
		t.Fatalf("Expected ErrExists on second write, got %v", err)
	}

	names := testutil.ListFiles(t, locator.Dir("de"))
	if len(names) != 1 || names[0] != "a.html" {
		t.Errorf("Expected only a.html, found %v", names)
	}
	testutil.AssertFileContent(t, locator.Path("de", "a.html"), []byte("<p>Hallo</p>"))
	if !locator.Exists("de", "a.html") {
		t.Error("Expected the written file to count as existing")
	}
}
