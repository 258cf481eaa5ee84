package file

import "errors"

var (
	ErrInvalidPath   = errors.New("file: invalid path")
	ErrInvalidConfig = errors.New("file: invalid configuration")

	ErrFileNotFound            = errors.New("file: not found")
	ErrFailedToCreateDirectory = errors.New("file: failed to create directory")
	ErrFailedToWriteFile       = errors.New("file: failed to write")
	ErrFailedToLoadConfig      = errors.New("file: failed to load AWS config")

	ErrBucketNotFound     = errors.New("file: bucket not found")
	ErrAccessDenied       = errors.New("file: access denied")
	ErrServiceUnavailable = errors.New("file: service temporarily unavailable")
	ErrOperationTimeout   = errors.New("file: operation timed out")
	ErrOperationCanceled  = errors.New("file: operation canceled")
)
