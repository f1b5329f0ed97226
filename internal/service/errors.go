package service

import "errors"

var (
	// ErrResumeNotPDF is returned when a resume upload does not carry a
	// .pdf filename. Nothing is written to disk in that case.
	ErrResumeNotPDF = errors.New("resume must be a PDF")

	// ErrProjectNotFound is returned when no stored project matches the
	// requested id.
	ErrProjectNotFound = errors.New("project not found")
)
