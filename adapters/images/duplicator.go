package images

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"fieldcorr/internal"
)

const (
	analyzedToken   = "_analyzed"
	correlatedToken = "_correlated"
)

// Duplicator copies analyzed field images to correlated counterparts so the
// report's inputs stay traceable next to it.
type Duplicator struct {
	dir string
	log *internal.Logger
}

// NewDuplicator creates a duplicator over the working directory
func NewDuplicator(dir string, logger *internal.Logger) *Duplicator {
	return &Duplicator{dir: dir, log: logger}
}

// Run copies every "<name>_analyzed.jpg" (or .jpeg) in the directory to
// "<name>_correlated" with the extension preserved. Subdirectories and
// non-matching files are skipped silently; a failed copy is logged and does
// not abort the remaining files. Returns the number of copies made.
func (d *Duplicator) Run() (int, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := filepath.Ext(name)
		lowerExt := strings.ToLower(ext)
		if lowerExt != ".jpg" && lowerExt != ".jpeg" {
			continue
		}
		base := strings.TrimSuffix(name, ext)
		if !strings.HasSuffix(base, analyzedToken) {
			continue
		}

		src := filepath.Join(d.dir, name)
		dst := filepath.Join(d.dir, strings.TrimSuffix(base, analyzedToken)+correlatedToken+ext)
		if err := copyFile(src, dst); err != nil {
			d.log.Warn("[Images] failed to copy %s: %v", name, err)
			continue
		}
		copied++
	}
	return copied, nil
}

// copyFile copies src to dst byte-for-byte, overwriting dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
