package domain

import "go.trai.ch/zerr"

var (
	// ErrCacheCorrupt is returned when the snapshot cache file exists but cannot
	// be parsed. Callers should treat the cache as empty rather than fail the build.
	ErrCacheCorrupt = zerr.New("snapshot cache corrupt")

	// ErrCachePersist is returned when the snapshot cache cannot be written.
	// The in-memory change set of the current pass is still valid; the next
	// pass simply won't see this pass's baseline.
	ErrCachePersist = zerr.New("failed to persist snapshot cache")

	// ErrNoCompiler is returned when a build is requested without a configured
	// compiler command.
	ErrNoCompiler = zerr.New("no compiler command configured")
)
