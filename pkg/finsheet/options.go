// Package finsheet extracts normalized financial statements from vendor
// "Data Sheet" workbooks.
package finsheet

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

// DefaultSheetName is the worksheet the vendor export keeps its data in.
const DefaultSheetName = "Data Sheet"

var validate = validator.New()

// Options configures a parse.
type Options struct {
	// SheetName is the worksheet to read. Empty means DefaultSheetName.
	SheetName string `validate:"omitempty,max=31"`
	// IncludeSheetData specifies whether to attach the raw sheet snapshot.
	// If nil, defaults to true.
	IncludeSheetData *bool
	// Logger receives debug traces of the scan and a summary line.
	// If nil, nothing is logged.
	Logger *slog.Logger `validate:"-"`
}

// DefaultOptions returns default parse options.
func DefaultOptions() Options {
	return Options{
		SheetName: DefaultSheetName,
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	return nil
}

// ShouldIncludeSheetData returns whether to attach the raw sheet snapshot.
func (o Options) ShouldIncludeSheetData() bool {
	if o.IncludeSheetData != nil {
		return *o.IncludeSheetData
	}
	return true
}

func (o Options) sheetName() string {
	if o.SheetName == "" {
		return DefaultSheetName
	}
	return o.SheetName
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.Logger
}
