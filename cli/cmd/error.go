package cmd

import "github.com/ardnew/msdscript/lang"

// Command errors share the language error type so that every failure logged
// by main carries the same structured attributes.
var (
	ErrReadSource     = lang.NewError("read source")
	ErrWriteOutput    = lang.NewError("write output")
	ErrInvalidBinding = lang.NewError("invalid binding")
	ErrInvalidName    = lang.NewError("invalid variable name")
	ErrWriteConfig    = lang.NewError("write configuration file")
	ErrFileExists     = lang.NewError("file exists (use --force to overwrite)")
)
