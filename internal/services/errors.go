package services

import "errors"

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidTemplate  = errors.New("invalid template")
	ErrInvalidCEP       = errors.New("invalid CEP: expected 8 digits")
	ErrCEPNotFound      = errors.New("CEP not found")
	ErrDatabaseDisabled = errors.New("database is not configured")
	ErrDocumentNotFound = errors.New("document not found")
	ErrRecordNotFound   = errors.New("record not found")

	// Generation stages that can fail after the template is filled.
	ErrOutputDirectory = errors.New("output directory unavailable")
	ErrSnapshotWrite   = errors.New("failed to write contract snapshot")
	ErrDocumentWrite   = errors.New("failed to write contract document")
)
