package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStorage writes files below baseDir.
type LocalStorage struct {
	baseDir string
	baseURL string
	perm    os.FileMode
}

// NewLocalStorage creates baseDir if needed. baseURL prefixes URL results and
// may be empty for root-relative URLs.
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("%w: empty base directory", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, errors.Join(ErrInvalidPath, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Join(ErrFailedToCreateDirectory, err)
	}
	return &LocalStorage{baseDir: abs, baseURL: baseURL, perm: 0o644}, nil
}

// Write replaces the file at p atomically.
func (s *LocalStorage) Write(ctx context.Context, p, _ string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrOperationCanceled, err)
	}
	dst, err := s.resolve(p)
	if err != nil {
		return err
	}
	dir := filepath.Dir(dst)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Join(ErrFailedToCreateDirectory, err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return errors.Join(ErrFailedToWriteFile, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrFailedToWriteFile, err)
	}
	if err := tmp.Chmod(s.perm); err != nil {
		_ = tmp.Close()
		return errors.Join(ErrFailedToWriteFile, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Join(ErrFailedToWriteFile, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		return errors.Join(ErrFailedToWriteFile, err)
	}
	return nil
}

func (s *LocalStorage) Exists(_ context.Context, p string) bool {
	dst, err := s.resolve(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(dst)
	return err == nil && !info.IsDir()
}

func (s *LocalStorage) URL(p string) string {
	key, err := cleanKey(p)
	if err != nil {
		return ""
	}
	return joinURL(s.baseURL, key)
}

// Dir returns the absolute base directory.
func (s *LocalStorage) Dir() string { return s.baseDir }

func (s *LocalStorage) resolve(p string) (string, error) {
	key, err := cleanKey(p)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(key)), nil
}
