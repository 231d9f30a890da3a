package raster

import "errors"

var (
	// ErrInvalidArgument is returned when a required argument is nil
	// or otherwise malformed.
	ErrInvalidArgument = errors.New("raster: invalid argument")

	// ErrInvalidViewport is returned by SetPerspective when the
	// requested viewport is smaller than 320x240.
	ErrInvalidViewport = errors.New("raster: invalid viewport")

	// ErrOutOfMemory is returned by SetPerspective when the requested
	// viewport's buffers cannot be allocated.
	ErrOutOfMemory = errors.New("raster: out of memory")
)
