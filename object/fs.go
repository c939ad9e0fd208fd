package object

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"testing/fstest"
)

// CreateFS defines a file system interface that supports creating and
// removing files, for writing the object files of a translation unit.
type CreateFS interface {
	// Sub returns a filesystem for a subdirectory.
	Sub(name string) (sub CreateFS, err error)
	// Create creates a new file for writing, truncating any existing file.
	Create(name string) (file io.WriteCloser, err error)
	// Mkdir creates a new directory with the specified permissions.
	Mkdir(name string, filemode fs.FileMode) (err error)
	// Remove removes a file.
	Remove(name string) (err error)
}

// Subdir returns the filesystem of a subdirectory, creating it if needed.
func Subdir(filesys CreateFS, name string) (subsys CreateFS, err error) {
	if name == "" || name == "." {
		subsys = filesys
		return
	}

	subsys, err = filesys.Sub(name)
	if err == nil || !errors.Is(err, fs.ErrNotExist) {
		return
	}

	err = filesys.Mkdir(name, 0755)
	if err != nil {
		return
	}

	subsys, err = filesys.Sub(name)
	return
}

// DirFS is a CreateFS rooted at an operating system directory. Names are
// joined to the directory without fs.ValidPath checks, so DirFS("")
// accepts any operating system path.
type DirFS string

var _ CreateFS = DirFS("")
var _ fs.FS = DirFS("")

func (dir DirFS) join(name string) string {
	return filepath.Join(string(dir), filepath.FromSlash(name))
}

// Open opens a file for reading.
func (dir DirFS) Open(name string) (fs.File, error) {
	return os.Open(dir.join(name))
}

// Sub returns a filesystem for a subdirectory, which must exist.
func (dir DirFS) Sub(name string) (sub CreateFS, err error) {
	info, err := os.Stat(dir.join(name))
	if err != nil {
		return
	}
	if !info.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrInvalid}
		return
	}
	sub = DirFS(dir.join(name))
	return
}

// Create creates a new file for writing.
func (dir DirFS) Create(name string) (file io.WriteCloser, err error) {
	return os.Create(dir.join(name))
}

// Mkdir creates a new directory.
func (dir DirFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	return os.Mkdir(dir.join(name), filemode)
}

// Remove removes a file.
func (dir DirFS) Remove(name string) (err error) {
	return os.Remove(dir.join(name))
}

// MemFS is an in-memory CreateFS, which can also be read back as a fs.FS.
type MemFS struct {
	Files fstest.MapFS
	dir   string
}

var _ CreateFS = &MemFS{}
var _ fs.FS = &MemFS{}

// NewMemFS creates an empty in-memory filesystem.
func NewMemFS() *MemFS {
	return &MemFS{Files: fstest.MapFS{}}
}

func (mem *MemFS) join(name string) string {
	return path.Join(mem.dir, name)
}

// Open opens a file for reading.
func (mem *MemFS) Open(name string) (fs.File, error) {
	return mem.Files.Open(mem.join(name))
}

// ReadFile returns the contents of a file.
func (mem *MemFS) ReadFile(name string) ([]byte, error) {
	return mem.Files.ReadFile(mem.join(name))
}

// Exists returns true if the file exists.
func (mem *MemFS) Exists(name string) bool {
	_, ok := mem.Files[mem.join(name)]
	return ok
}

// Sub returns a filesystem for a subdirectory, which must exist.
func (mem *MemFS) Sub(name string) (sub CreateFS, err error) {
	file, ok := mem.Files[mem.join(name)]
	if !ok {
		err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrNotExist}
		return
	}
	if !file.Mode.IsDir() {
		err = &fs.PathError{Op: "sub", Path: name, Err: fs.ErrInvalid}
		return
	}
	sub = &MemFS{Files: mem.Files, dir: mem.join(name)}
	return
}

type memFile struct {
	bytes.Buffer
	mem  *MemFS
	name string
}

func (file *memFile) Close() error {
	file.mem.Files[file.name] = &fstest.MapFile{Data: file.Bytes(), Mode: 0644}
	return nil
}

// Create creates a new file for writing. The contents are visible after Close.
func (mem *MemFS) Create(name string) (file io.WriteCloser, err error) {
	if !fs.ValidPath(name) {
		err = &fs.PathError{Op: "create", Path: name, Err: fs.ErrInvalid}
		return
	}
	file = &memFile{mem: mem, name: mem.join(name)}
	return
}

// Mkdir creates a new directory.
func (mem *MemFS) Mkdir(name string, filemode fs.FileMode) (err error) {
	if mem.Exists(name) {
		err = &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
		return
	}
	mem.Files[mem.join(name)] = &fstest.MapFile{Mode: fs.ModeDir | filemode}
	return
}

// Remove removes a file.
func (mem *MemFS) Remove(name string) (err error) {
	if !mem.Exists(name) {
		err = &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
		return
	}
	delete(mem.Files, mem.join(name))
	return
}
