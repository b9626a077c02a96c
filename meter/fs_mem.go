package meter

import (
	"fmt"
	"os"
)

var _ FileSystem = (*MemFileSystem)(nil)

// MemFileSystem implements FileSystem in memory, it's not safe for concurrent use
type MemFileSystem struct {
	files map[string]string
}

// NewMemFileSystem create MemFileSystem with the initial files
func NewMemFileSystem(files map[string]string) *MemFileSystem {
	m := &MemFileSystem{files: make(map[string]string, len(files))}
	for k, v := range files {
		m.files[k] = v
	}
	return m
}

// Exists implements FileSystem.Exists
func (p *MemFileSystem) Exists(path string) (bool, error) {
	_, ok := p.files[path]
	return ok, nil
}

// ReadAllText implements FileSystem.ReadAllText
func (p *MemFileSystem) ReadAllText(path string) (string, error) {
	content, ok := p.files[path]
	if !ok {
		return "", fmt.Errorf("%s: %w", path, os.ErrNotExist)
	}
	return content, nil
}

// WriteAllText implements FileSystem.WriteAllText
func (p *MemFileSystem) WriteAllText(path, content string) error {
	p.files[path] = content
	return nil
}
