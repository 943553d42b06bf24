package analysis

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when a document's extension is not one of
// the supported résumé formats. User-correctable: re-upload in a supported
// format.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// ExtractionError wraps a decoder failure on supplied bytes (corrupt file,
// encrypted content). User-correctable.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ModelLoadError signals that the embedding model or the role catalog could
// not be initialized. Fatal at process startup, never per-request.
type ModelLoadError struct {
	Err error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("failed to load analysis models: %v", e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }

// PipelineError wraps an unexpected failure in one of the analysis stages.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("analysis stage %q failed: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
