package logging

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// LogRotator is a size-rotated log file. Rotated files get a timestamp
// suffix and are optionally gzipped; old backups are pruned by age and count.
type LogRotator struct {
	mu          sync.Mutex
	path        string
	maxSize     int64 // bytes
	maxAge      time.Duration
	maxBackups  int
	compress    bool
	currentFile *os.File
	currentSize int64
}

// RotatorOptions configures NewLogRotator.
type RotatorOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// NewLogRotator opens path for appending, creating parent directories.
func NewLogRotator(path string, opts RotatorOptions) (*LogRotator, error) {
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	r := &LogRotator{
		path:       path,
		maxSize:    int64(opts.MaxSizeMB) * 1024 * 1024,
		maxAge:     time.Duration(opts.MaxAgeDays) * 24 * time.Hour,
		maxBackups: opts.MaxBackups,
		compress:   opts.Compress,
	}
	if err := r.openCurrentFile(); err != nil {
		return nil, err
	}
	return r, nil
}

// Path returns the active log file path.
func (r *LogRotator) Path() string {
	return r.path
}

func (r *LogRotator) openCurrentFile() error {
	r.currentSize = 0
	if info, err := os.Stat(r.path); err == nil {
		r.currentSize = info.Size()
	}

	file, err := os.OpenFile(r.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	r.currentFile = file
	return nil
}

func (r *LogRotator) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		if err := r.openCurrentFile(); err != nil {
			return 0, err
		}
	}

	if r.currentSize > 0 && r.currentSize+int64(len(p)) > r.maxSize {
		if err := r.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := r.currentFile.Write(p)
	r.currentSize += int64(n)
	return n, err
}

func (r *LogRotator) rotate() error {
	if err := r.currentFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}
	r.currentFile = nil

	backupPath := r.path + "." + time.Now().Format("2006-01-02-15-04-05.000")
	if err := os.Rename(r.path, backupPath); err != nil {
		return fmt.Errorf("failed to rotate log file: %w", err)
	}

	if r.compress {
		if err := compressFile(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to compress log file %s: %v\n", backupPath, err)
		} else if err := os.Remove(backupPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove uncompressed log file %s: %v\n", backupPath, err)
		}
	}

	r.prune()
	return r.openCurrentFile()
}

func compressFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(path + ".gz")
	if err != nil {
		return err
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	if _, err := io.Copy(gz, in); err != nil {
		_ = gz.Close()
		return err
	}
	return gz.Close()
}

// Backups lists rotated files, oldest first.
func (r *LogRotator) Backups() []string {
	dir, base := filepath.Split(r.path)
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	type backup struct {
		name string
		mod  time.Time
	}
	var backups []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base+".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		backups = append(backups, backup{name: filepath.Join(dir, e.Name()), mod: info.ModTime()})
	}
	sort.Slice(backups, func(i, j int) bool {
		if backups[i].mod.Equal(backups[j].mod) {
			return backups[i].name < backups[j].name
		}
		return backups[i].mod.Before(backups[j].mod)
	})

	names := make([]string, len(backups))
	for i, b := range backups {
		names[i] = b.name
	}
	return names
}

func (r *LogRotator) prune() {
	backups := r.Backups()
	now := time.Now()

	kept := backups[:0]
	for _, name := range backups {
		if r.maxAge > 0 {
			if info, err := os.Stat(name); err == nil && now.Sub(info.ModTime()) > r.maxAge {
				if err := os.Remove(name); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
				}
				continue
			}
		}
		kept = append(kept, name)
	}

	if r.maxBackups <= 0 || len(kept) <= r.maxBackups {
		return
	}
	for _, name := range kept[:len(kept)-r.maxBackups] {
		if err := os.Remove(name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to remove excess backup file: %v\n", err)
		}
	}
}

func (r *LogRotator) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.currentFile == nil {
		return nil
	}
	err := r.currentFile.Close()
	r.currentFile = nil
	return err
}
