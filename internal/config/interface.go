package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads every matrix definition reachable from the given paths and
	// translates it into the format-agnostic model. A loader silently skips
	// files that are not in its format; an empty model is not an error.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
