package meter

import (
	"os"
	"path/filepath"

	c "github.com/d0ngw/census/common"
)

// FileSystem is the file access used by Store to read and write snapshots
type FileSystem interface {
	// Exists report whether a snapshot exists at path
	Exists(path string) (bool, error)
	// ReadAllText read the whole snapshot at path
	ReadAllText(path string) (string, error)
	// WriteAllText replace the snapshot at path with content
	WriteAllText(path, content string) error
}

var _ FileSystem = (*OSFileSystem)(nil)

// OSFileSystem implements FileSystem with local files
type OSFileSystem struct {
	loader c.ConfigLoader
	perm   os.FileMode
}

// NewOSFileSystem create OSFileSystem, files are written with mode 0644
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{loader: c.FileLoader, perm: 0644}
}

// Exists implements FileSystem.Exists, a directory is not a snapshot
func (p *OSFileSystem) Exists(path string) (bool, error) {
	return p.loader.Exist(path)
}

// ReadAllText implements FileSystem.ReadAllText
func (p *OSFileSystem) ReadAllText(path string) (string, error) {
	b, err := p.loader.Load(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// WriteAllText implements FileSystem.WriteAllText, the parent directories are created if necessary
func (p *OSFileSystem) WriteAllText(path, content string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), p.perm)
}
