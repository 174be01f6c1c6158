package modeldir

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	opStat = "stat"
	opList = "list"
)

type Inspector struct {
	fs   Filesystem
	path string
}

func NewInspector(path string) *Inspector {
	return NewInspectorWithFilesystem(path, OSFilesystem{})
}

func NewInspectorWithFilesystem(path string, fs Filesystem) *Inspector {
	return &Inspector{
		fs:   fs,
		path: path,
	}
}

func (i *Inspector) Path() string {
	return i.path
}

// Inspect checks whether the model path exists and lists its immediate
// entries. The path may change between the two calls; a listing failure
// caused by that race is reported as a FaultError.
func (i *Inspector) Inspect() (*Listing, error) {
	if _, err := i.fs.Stat(i.path); err != nil {
		if isAbsent(err) {
			log.WithFields(log.Fields{"kind": "modeldir", "path": i.path}).Debug("model path does not exist")
			return nil, ErrPathAbsent
		}
		return nil, &FaultError{Op: opStat, Path: i.path, Err: err}
	}

	entries, err := i.fs.ReadDirNames(i.path)
	if err != nil {
		return nil, &FaultError{Op: opList, Path: i.path, Err: err}
	}

	if entries == nil {
		entries = []string{}
	}

	log.WithFields(log.Fields{"kind": "modeldir", "path": i.path, "entries": len(entries)}).Debug("listed model path")
	return &Listing{Path: i.path, Entries: entries}, nil
}

// isAbsent reports stat errors that mean nothing exists at the path,
// including a regular file in place of one of its parent directories.
func isAbsent(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}
