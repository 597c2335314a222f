package tradeplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/tradeplot-go/pkg/tradeplot/runtime"
)

// ErrRuntimeNotFound indicates the plotly.js bundle to inline is missing.
var ErrRuntimeNotFound = runtime.ErrBundleNotFound

// ErrInvalidRuntimeMode indicates an unknown runtime mode.
var ErrInvalidRuntimeMode = errors.New("invalid runtime mode")

// ExportError represents an error while producing the output document.
type ExportError struct {
	Stage string // "build", "runtime", "render", "write"
	Path  string
	Err   error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s failed at %s: %v", e.Path, e.Stage, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(stage, path string, err error) *ExportError {
	return &ExportError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
