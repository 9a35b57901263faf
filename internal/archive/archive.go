package archive

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// ArchiveLanguageDirs moves every existing <prefix>_<code> directory below
// root into <root>/archive/<prefix>_<code>-<timestamp>. Missing directories
// are skipped. The archived paths are returned in the order of codes and
// reported on w.
func ArchiveLanguageDirs(w io.Writer, root, prefix string, codes []string) ([]string, error) {
	archiveDir := filepath.Join(root, "archive")
	timestamp := time.Now().Format("20060102-150405")

	var archived []string
	for _, code := range codes {
		name := fmt.Sprintf("%s_%s", prefix, code)
		dir := filepath.Join(root, name)

		info, err := os.Stat(dir)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return archived, fmt.Errorf("failed to stat %s: %w", dir, err)
		}
		if !info.IsDir() {
			return archived, fmt.Errorf("%s is not a directory", dir)
		}

		if err := os.MkdirAll(archiveDir, 0755); err != nil {
			return archived, fmt.Errorf("failed to create archive directory: %w", err)
		}

		archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s", name, timestamp))
		if _, err := os.Stat(archivePath); err == nil {
			// Same second as a previous archive
			archivePath = filepath.Join(archiveDir,
				fmt.Sprintf("%s-%s", name, time.Now().Format("20060102-150405.000000")))
		}

		if err := os.Rename(dir, archivePath); err != nil {
			return archived, fmt.Errorf("failed to archive %s: %w", dir, err)
		}

		fmt.Fprintf(w, "%s archived to: %s\n", name, archivePath)
		archived = append(archived, archivePath)
	}

	return archived, nil
}
