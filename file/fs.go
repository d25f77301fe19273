package file

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// CreateFS defines a file system interface that supports creating files and directories.
// It extends basic file system operations with the write capabilities needed to
// save sources and assembled output.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
}

// DirFS is a CreateFS rooted at a directory of the host file system.
type DirFS string

var _ CreateFS = DirFS("")

func (dir DirFS) join(name string) (path string, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
		return
	}
	path = filepath.Join(string(dir), filepath.FromSlash(name))
	return
}

// Sub returns a DirFS for an existing subdirectory.
func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	path, err := dir.join(name)
	if err != nil {
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: ErrNotDirectory}
		return
	}

	sub = DirFS(path)
	return
}

// Create creates or truncates a file.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	path, err := dir.join(name)
	if err != nil {
		return
	}

	return os.Create(path)
}

// Mkdir creates a directory.
func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	path, err := dir.join(name)
	if err != nil {
		return
	}

	return os.Mkdir(path, filemode)
}
