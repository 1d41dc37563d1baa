package graphview

import "errors"

// Sentinel errors for explicit selection calls. Drawing never surfaces
// errors; it degrades visually instead.
var (
	ErrNodeNotFound = errors.New("node not found in scene")
	ErrNoScene      = errors.New("no scene loaded")
)
