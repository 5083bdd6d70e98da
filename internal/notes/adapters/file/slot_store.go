// Package file keeps every storage slot in its own file inside a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"localnotes/pkg/logger"
)

const (
	ErrCreateDir  = "failed to create slot directory"
	ErrInvalidKey = "invalid slot key"
	ErrReadSlot   = "failed to read slot file"
	ErrWriteSlot  = "failed to write slot file"

	slotExt = ".json"
)

// SlotStore stores slot <key> in <dir>/<key>.json. Writes go through a temporary
// file and a rename, so a reader never sees a half-written slot.
type SlotStore struct {
	dir string
}

// NewSlotStore creates dir if needed.
func NewSlotStore(ctx context.Context, dir string) (*SlotStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Log(ctx).Error(ctx, ErrCreateDir, zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	return &SlotStore{dir: dir}, nil
}

func (s *SlotStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("%s: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key+slotExt), nil
}

func (s *SlotStore) Get(_ context.Context, key string) (string, bool, error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", ErrReadSlot, err)
	}
	return string(data), true, nil
}

func (s *SlotStore) Set(_ context.Context, key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("%s: %w", ErrWriteSlot, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrWriteSlot, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrWriteSlot, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%s: %w", ErrWriteSlot, err)
	}
	return nil
}

// Close is a no-op; files are not held open between calls.
func (s *SlotStore) Close() error {
	return nil
}
