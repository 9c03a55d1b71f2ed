package runreg

import "time"

// Info is one registry entry: a snapshot of a running local server instance.
//
// Info is a plain value type and is treated as immutable: pass it by value,
// and "replace a field" by copying the struct and assigning the new field on
// the copy. There are no setters, so an encoded entry always reflects a
// fully-formed snapshot.
//
// StartTime carries second precision only; the wire format stores it as an
// integer count of epoch seconds, and Encode truncates anything finer.
type Info struct {
	// Version is the version string of the build that registered the
	// instance. Encode requires it to equal Version exactly; Decode accepts
	// anything Compatible with the running build.
	Version string

	// StartTime is when the instance started, at second precision.
	StartTime time.Time

	// Port the instance is listening on.
	Port int

	// PID of the instance's process.
	PID int

	// PathPrefix is the URL path prefix the instance serves under.
	// May be empty.
	PathPrefix string

	// Logdir is the data directory the instance was pointed at.
	// May be empty.
	Logdir string

	// DB is the database URI the instance was pointed at. May be empty.
	DB string

	// CacheKey distinguishes instances with identical (Logdir, DB,
	// PathPrefix) that were launched with different startup arguments.
	// Opaque to this package; see CacheKey for the standard derivation.
	CacheKey string
}
