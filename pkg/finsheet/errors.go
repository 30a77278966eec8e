package finsheet

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates the input file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrUnreadableWorkbook indicates the input is neither a readable xlsx nor xls workbook.
	ErrUnreadableWorkbook = errors.New("unreadable workbook")
	// ErrSheetNotFound indicates the workbook has no sheet with the requested name.
	ErrSheetNotFound = errors.New("sheet not found")
	// ErrInvalidOptions indicates Options failed validation.
	ErrInvalidOptions = errors.New("invalid options")
)

// Stage names the step of a parse that failed.
type Stage string

const (
	// StageOpen is decoding the workbook container.
	StageOpen Stage = "open"
	// StageRows is reading the rows of the data sheet.
	StageRows Stage = "rows"
	// StageSnapshot is copying the raw sheet.
	StageSnapshot Stage = "snapshot"
	// StageScan is walking the rows through the section state machine.
	StageScan Stage = "scan"
)

// ExtractionError reports which stage of parsing the named sheet failed.
// Open and row failures wrap ErrUnreadableWorkbook, as do panics recovered
// during any stage, which are reported as StageScan.
type ExtractionError struct {
	SheetName string
	Stage     Stage
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("sheet %q: %s stage: %v", e.SheetName, e.Stage, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// unreadable wraps a decoder error as an ExtractionError for the stage.
func unreadable(sheetName string, stage Stage, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Stage:     stage,
		Err:       fmt.Errorf("%w: %w", ErrUnreadableWorkbook, err),
	}
}
