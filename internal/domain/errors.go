package domain

import "errors"

var (
	ErrEmptyRawText        = errors.New("raw text is empty")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
)
