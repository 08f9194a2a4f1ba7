// FILE: tomldir/errors.go
package tomldir

import "errors"

var (
	// ErrConfigNotFound indicates the config file does not exist
	ErrConfigNotFound = errors.New("config file not found")

	// ErrParse indicates the source text was rejected by the parser
	ErrParse = errors.New("config parse error")

	// ErrUnknownFormat indicates the file format could not be determined
	ErrUnknownFormat = errors.New("unable to determine config format")
)
