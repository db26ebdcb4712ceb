package core

import (
	"io"
	"io/fs"
	"os"
)

type LocalFs interface {
	Stat(path string) (fs.FileInfo, error)
	Open(path string) (io.ReadCloser, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, mode fs.FileMode) error
	ReadDir(path string) ([]fs.DirEntry, error)
	MkdirAll(path string, mode fs.FileMode) error
	Remove(path string) error
}

type DefaultLocalFs struct {
}

var defaultFs *DefaultLocalFs

func GetDefaultLocalFs() *DefaultLocalFs {
	if defaultFs == nil {
		defaultFs = &DefaultLocalFs{}
	}

	return defaultFs
}

func (d *DefaultLocalFs) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

func (d *DefaultLocalFs) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (d *DefaultLocalFs) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (d *DefaultLocalFs) WriteFile(path string, data []byte, mode fs.FileMode) error {
	return os.WriteFile(path, data, mode)
}

func (d *DefaultLocalFs) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (d *DefaultLocalFs) MkdirAll(path string, mode fs.FileMode) error {
	return os.MkdirAll(path, mode)
}

func (d *DefaultLocalFs) Remove(path string) error {
	return os.Remove(path)
}

// FileExists reports whether path names an existing regular file.
func FileExists(fs LocalFs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
