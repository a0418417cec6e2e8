package resumes

import "errors"

var (
	// ErrNotFound indicates an entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates access is not allowed.
	ErrForbidden = errors.New("forbidden")

	// ErrUnsupportedFormat indicates the uploaded file type is not accepted.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrExtractionFailed indicates no usable text could be read from the file.
	ErrExtractionFailed = errors.New("could not extract text from file")
)
