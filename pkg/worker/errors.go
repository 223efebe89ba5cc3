package worker

import (
	"errors"
	"fmt"

	"github.com/joeydtaylor/steeze-worker/pkg/environment"
)

var (
	ErrUnsupportedMode    = errors.New("worker: unsupported mode")
	ErrUnregisteredWorker = errors.New("worker: no worker registered")
)

// UnsupportedModeError: the environment reports a mode no worker is compiled in for.
type UnsupportedModeError struct {
	Declared environment.Mode // what the caller asked for
	Reported environment.Mode // what the environment says
}

func (e *UnsupportedModeError) Error() string {
	if e.Declared == e.Reported {
		return fmt.Sprintf("worker: unsupported mode %q", e.Reported)
	}
	return fmt.Sprintf("worker: unsupported mode %q (declared %q)", e.Reported, e.Declared)
}

func (e *UnsupportedModeError) Is(target error) bool { return target == ErrUnsupportedMode }

// UnregisteredWorkerError: the mode is valid but bootstrap never registered a worker for it.
type UnregisteredWorkerError struct {
	Mode environment.Mode
}

func (e *UnregisteredWorkerError) Error() string {
	return fmt.Sprintf("worker: no worker registered for mode %q", e.Mode)
}

func (e *UnregisteredWorkerError) Is(target error) bool { return target == ErrUnregisteredWorker }
