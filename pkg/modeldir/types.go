package modeldir

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrPathAbsent = errors.New("model path does not exist")

type Listing struct {
	Path    string
	Entries []string
}

// FaultError is returned for every failure of the existence check or the
// listing other than the path being absent.
type FaultError struct {
	Op   string
	Path string
	Err  error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("failed to %s model path %q: %s", e.Op, e.Path, e.Err)
}

func (e *FaultError) Unwrap() error {
	return e.Err
}

func (e *FaultError) Cause() error {
	return e.Err
}

func IsPathAbsent(err error) bool {
	return errors.Is(err, ErrPathAbsent)
}

func IsFault(err error) bool {
	var fault *FaultError
	return errors.As(err, &fault)
}
