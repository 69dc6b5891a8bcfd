package logging

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// RotateOptions configures a RotatingFile.
type RotateOptions struct {
	Dir        string
	Name       string // defaults to "cardboard.log"
	MaxSizeMB  int    // defaults to 10
	MaxBackups int    // 0 keeps every backup
	Compress   bool
}

// RotatingFile is an io.WriteCloser that rolls its file over once it grows
// past MaxSizeMB. The interactive view logs here because stderr belongs to
// the terminal UI.
type RotatingFile struct {
	mu      sync.Mutex
	opts    RotateOptions
	maxSize int64
	file    *os.File
	size    int64
	now     func() time.Time
}

// NewRotatingFile opens (or creates) the log file in opts.Dir.
func NewRotatingFile(opts RotateOptions) (*RotatingFile, error) {
	if opts.Name == "" {
		opts.Name = "cardboard.log"
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if err := os.MkdirAll(opts.Dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &RotatingFile{
		opts:    opts,
		maxSize: int64(opts.MaxSizeMB) * 1024 * 1024,
		now:     time.Now,
	}
	if err := r.open(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the path of the active log file.
func (r *RotatingFile) Path() string {
	return filepath.Join(r.opts.Dir, r.opts.Name)
}

func (r *RotatingFile) open() error {
	path := r.Path()
	if info, err := os.Stat(path); err == nil {
		r.size = info.Size()
	} else {
		r.size = 0
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.file = f
	return nil
}

// Write appends p, rotating first when p would overflow the size limit.
func (r *RotatingFile) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		if err := r.open(); err != nil {
			return 0, err
		}
	}
	if r.size > 0 && r.size+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.file.Write(p)
	r.size += int64(n)
	return n, err
}

func (r *RotatingFile) rotate() error {
	if err := r.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	r.file = nil

	backup := filepath.Join(r.opts.Dir, fmt.Sprintf("%s.%s", r.opts.Name, r.now().Format("20060102-150405.000")))
	if err := os.Rename(r.Path(), backup); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}
	if r.opts.Compress {
		if err := gzipFile(backup); err == nil {
			_ = os.Remove(backup)
		}
	}
	r.prune()
	return r.open()
}

func gzipFile(path string) (err error) {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, in.Close()) }()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, out.Close()) }()

	zw := gzip.NewWriter(out)
	if _, err = io.Copy(zw, in); err != nil {
		return err
	}
	return zw.Close()
}

// prune removes the oldest backups beyond MaxBackups.
func (r *RotatingFile) prune() {
	if r.opts.MaxBackups <= 0 {
		return
	}
	entries, err := os.ReadDir(r.opts.Dir)
	if err != nil {
		return
	}

	var backups []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), r.opts.Name+".") {
			backups = append(backups, e.Name())
		}
	}
	if len(backups) <= r.opts.MaxBackups {
		return
	}
	// timestamps sort lexically
	sort.Strings(backups)
	for _, name := range backups[:len(backups)-r.opts.MaxBackups] {
		_ = os.Remove(filepath.Join(r.opts.Dir, name))
	}
}

// Close closes the active file.
func (r *RotatingFile) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}
