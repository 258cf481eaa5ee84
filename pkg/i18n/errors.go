package i18n

import "errors"

var (
	ErrNilAdapter   = errors.New("translation adapter is nil")
	ErrEmptyCatalog = errors.New("no translations loaded")

	// JSON operations
	ErrFailedToMarshalJSON  = errors.New("failed to marshal translations to JSON")
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File system operations
	ErrLoadingCancelled   = errors.New("loading translations cancelled")
	ErrFailedToReadDir    = errors.New("failed to read translations directory")
	ErrFailedToReadFile   = errors.New("failed to read translation file")
	ErrFailedToParseFile  = errors.New("failed to parse translation file")
	ErrNoTranslationFiles = errors.New("no valid translation files found")
)

// ErrLanguageNotSupported indicates that the requested language is not available.
type ErrLanguageNotSupported struct {
	Lang string
}

func (e *ErrLanguageNotSupported) Error() string {
	return "language not supported: " + e.Lang
}
