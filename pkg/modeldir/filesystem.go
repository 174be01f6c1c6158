package modeldir

import (
	"os"
)

// Filesystem is the part of the host filesystem the inspector depends on.
type Filesystem interface {
	Stat(path string) (os.FileInfo, error)
	ReadDirNames(path string) ([]string, error)
}

type OSFilesystem struct{}

var _ Filesystem = OSFilesystem{}

func (OSFilesystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadDirNames returns the names of the immediate entries of path in the
// order the operating system yields them.
func (OSFilesystem) ReadDirNames(path string) ([]string, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.Readdirnames(-1)
}
