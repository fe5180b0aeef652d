package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/danieljhkim/refolder/internal/fsops"
)

var _ fsops.FS = (*memFS)(nil)

var errCrossDevice = errors.New("invalid cross-device link")

// memFS is an in-memory filesystem that can inject failures into the move
// path. It also implements hash.Hasher over its own contents.
type memFS struct {
	files map[string][]byte
	dirs  map[string]bool

	renameErr  error
	copyErr    error
	corruptCp  bool
	removeErrs map[string]error

	// ops records mutating calls in order
	ops []string
}

func newMemFS(dirs ...string) *memFS {
	m := &memFS{
		files:      make(map[string][]byte),
		dirs:       make(map[string]bool),
		removeErrs: make(map[string]error),
	}
	for _, d := range dirs {
		_ = m.MkdirAll(d, 0755)
	}
	return m
}

func (m *memFS) write(path, content string) {
	_ = m.MkdirAll(filepath.Dir(path), 0755)
	m.files[path] = []byte(content)
}

func (m *memFS) Stat(path string) (os.FileInfo, error) {
	if m.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeDir | 0755, isDir: true}, nil
	}
	if content, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content)), mode: 0644}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

func (m *memFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if !m.dirs[path] {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: fs.ErrNotExist}
	}
	var entries []fs.DirEntry
	add := func(p string) {
		if filepath.Dir(p) == path && p != path {
			info, _ := m.Stat(p)
			entries = append(entries, fs.FileInfoToDirEntry(info))
		}
	}
	for d := range m.dirs {
		add(d)
	}
	for f := range m.files {
		add(f)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *memFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; ; p = filepath.Dir(p) {
		if _, ok := m.files[p]; ok {
			return &fs.PathError{Op: "mkdir", Path: p, Err: errors.New("not a directory")}
		}
		m.dirs[p] = true
		if parent := filepath.Dir(p); parent == p {
			break
		}
	}
	m.ops = append(m.ops, "mkdir "+path)
	return nil
}

func (m *memFS) Remove(path string) error {
	if err, ok := m.removeErrs[path]; ok {
		return err
	}
	if _, ok := m.files[path]; ok {
		delete(m.files, path)
		m.ops = append(m.ops, "remove "+path)
		return nil
	}
	if m.dirs[path] {
		entries, _ := m.ReadDir(path)
		if len(entries) > 0 {
			return &fs.PathError{Op: "remove", Path: path, Err: errors.New("directory not empty")}
		}
		delete(m.dirs, path)
		m.ops = append(m.ops, "remove "+path)
		return nil
	}
	return &fs.PathError{Op: "remove", Path: path, Err: fs.ErrNotExist}
}

func (m *memFS) Rename(oldpath, newpath string) error {
	if m.renameErr != nil {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: m.renameErr}
	}
	content, ok := m.files[oldpath]
	if !ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	if !m.dirs[filepath.Dir(newpath)] {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: fs.ErrNotExist}
	}
	delete(m.files, oldpath)
	m.files[newpath] = content
	m.ops = append(m.ops, "rename "+oldpath+" "+newpath)
	return nil
}

func (m *memFS) Copy(src, dst string) error {
	content, ok := m.files[src]
	if !ok {
		return &fs.PathError{Op: "open", Path: src, Err: fs.ErrNotExist}
	}
	if m.copyErr != nil {
		// Leave a partial file behind, as an interrupted copy would.
		m.files[dst] = content[:len(content)/2]
		return m.copyErr
	}
	out := append([]byte(nil), content...)
	if m.corruptCp && len(out) > 0 {
		out = out[:len(out)-1]
	}
	m.files[dst] = out
	m.ops = append(m.ops, "copy "+src+" "+dst)
	return nil
}

func (m *memFS) Exists(path string) (bool, error) {
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

// HashFile hashes in-memory content.
func (m *memFS) HashFile(path string) (string, error) {
	content, ok := m.files[path]
	if !ok {
		return "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:]), nil
}

type mockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }
