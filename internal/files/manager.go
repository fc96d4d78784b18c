package files

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Manager owns the location of the list document and the raw bytes moving in
// and out of it. Decoding is left to the todo package.
type Manager struct {
	path string
}

// NewManager constructs a Manager for the provided file. If path is empty it
// falls back to ResolvePath, i.e. TODO_FILE or todo.json in the working
// directory.
func NewManager(path string) (*Manager, error) {
	var err error
	if path == "" {
		path, err = ResolvePath("")
		if err != nil {
			return nil, err
		}
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	return &Manager{path: abs}, nil
}

// Path returns the absolute path of the list document.
func (m *Manager) Path() string {
	return m.path
}

// EnsureFile guarantees the parent directories exist and the document is
// present, creating it empty when missing. Existing content is left alone.
func (m *Manager) EnsureFile() (string, error) {
	if m == nil {
		return "", errors.New("files.Manager is nil")
	}

	if err := os.MkdirAll(filepath.Dir(m.path), dirPermissions); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}

	file, err := os.OpenFile(m.path, os.O_RDONLY|os.O_CREATE, filePermissions)
	if err != nil {
		return "", fmt.Errorf("open todo file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close todo file: %w", err)
	}

	return m.path, nil
}

// ReadFile returns the document contents, creating an empty document first if
// none exists yet.
func (m *Manager) ReadFile() ([]byte, error) {
	path, err := m.EnsureFile()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}
	return data, nil
}

// WriteFile replaces the document with data. The bytes land in a temp file in
// the same directory which is then renamed over the target, so a failed write
// never leaves a half-written document behind.
func (m *Manager) WriteFile(data []byte) error {
	if m == nil {
		return errors.New("files.Manager is nil")
	}

	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	temp, err := os.CreateTemp(dir, ".todo-*")
	if err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	defer os.Remove(temp.Name())

	if _, err := temp.Write(data); err != nil {
		temp.Close()
		return fmt.Errorf("write todo file: %w", err)
	}
	if err := temp.Sync(); err != nil {
		temp.Close()
		return fmt.Errorf("sync todo file: %w", err)
	}
	if err := temp.Close(); err != nil {
		return fmt.Errorf("close todo file: %w", err)
	}

	mode := os.FileMode(filePermissions)
	if info, err := os.Stat(m.path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.Chmod(temp.Name(), mode); err != nil {
		return fmt.Errorf("chmod todo file: %w", err)
	}

	if err := os.Rename(temp.Name(), m.path); err != nil {
		return fmt.Errorf("replace todo file: %w", err)
	}
	return nil
}
