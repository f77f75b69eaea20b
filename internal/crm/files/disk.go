// Package files stores uploaded documents on local disk.
package files

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// maxNameLen keeps stored names well inside filesystem limits.
const maxNameLen = 150

// SanitizeName keeps the base name of an upload and replaces every
// character outside [A-Za-z0-9_.-] with an underscore.
func SanitizeName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || strings.Trim(name, ".") == "" {
		name = "file"
	}
	if len(name) > maxNameLen {
		ext := filepath.Ext(name)
		if len(ext) > 20 {
			ext = ""
		}
		name = name[:maxNameLen-len(ext)] + ext
	}
	return name
}

// Disk keeps files under one directory, named "{unixMillis}_{sanitized}".
type Disk struct {
	Dir string

	now func() time.Time
}

// NewDisk creates dir if needed.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Disk{Dir: abs, now: time.Now}, nil
}

// Save streams r to a new file. Names never overwrite: on a collision the
// timestamp prefix is bumped.
func (d *Disk) Save(originalName string, r io.Reader) (string, string, int64, error) {
	safe := SanitizeName(originalName)
	ms := d.now().UnixMilli()

	var (
		f    *os.File
		name string
		err  error
	)
	for range 10 {
		name = fmt.Sprintf("%d_%s", ms, safe)
		f, err = os.OpenFile(filepath.Join(d.Dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
		if !errors.Is(err, fs.ErrExist) {
			break
		}
		ms++
	}
	if err != nil {
		return "", "", 0, err
	}

	path := f.Name()
	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", "", 0, err
	}
	return name, path, n, nil
}

// Open opens a stored file for reading.
func (d *Disk) Open(path string) (io.ReadSeekCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (d *Disk) Remove(path string) error {
	return os.Remove(path)
}

// ListOlderThan returns the paths of stored files last modified before cutoff.
func (d *Disk) ListOlderThan(cutoff time.Time) ([]string, error) {
	entries, err := os.ReadDir(d.Dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		if info.ModTime().Before(cutoff) {
			out = append(out, filepath.Join(d.Dir, e.Name()))
		}
	}
	return out, nil
}
