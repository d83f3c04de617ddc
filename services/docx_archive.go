package services

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// docxPart is one named entry of a document archive. Parts keep their
// original order; parts untouched by the pipeline are written back
// byte-for-byte.
type docxPart struct {
	Name string
	Data []byte
}

// isWordXML reports whether a part holds visible document text.
func isWordXML(name string) bool {
	return strings.HasPrefix(name, "word/") && strings.HasSuffix(name, ".xml")
}

func readDocxParts(path string) ([]docxPart, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	parts := make([]docxPart, 0, len(r.File))
	for _, f := range r.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open part %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read part %s: %w", f.Name, err)
		}
		parts = append(parts, docxPart{Name: f.Name, Data: data})
	}
	return parts, nil
}

// writeDocxParts writes the archive atomically: a uuid-named temp file in
// the destination directory, then a rename, so a failure never leaves a
// half-written document at the destination path.
func writeDocxParts(path string, parts []docxPart) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	tmpPath := filepath.Join(dir, ".render-"+uuid.NewString()+".tmp")
	tmpFile, err := os.Create(tmpPath)
	if err != nil {
		return err
	}
	defer os.Remove(tmpPath)

	zw := zip.NewWriter(tmpFile)
	for _, part := range parts {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: part.Name, Method: zip.Deflate})
		if err != nil {
			tmpFile.Close()
			return fmt.Errorf("write part %s: %w", part.Name, err)
		}
		if _, err := w.Write(part.Data); err != nil {
			tmpFile.Close()
			return fmt.Errorf("write part %s: %w", part.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}
