package runreg

const (
	// Version is the version string of this build. It is the only value
	// Encode accepts in Info.Version, and the reference point for the
	// compatibility check on Decode.
	Version = "1.4.0"

	// VersionUnknown is the sentinel used by builds that do not embed a
	// version string (development builds). It is considered compatible with
	// every version, so strict checking is effectively skipped for it.
	VersionUnknown = "unknown"
)

// Compatible reports whether an entry written by version found can be trusted
// by a build running version current. Versions are compatible iff they are
// byte-for-byte equal, or either side is VersionUnknown.
//
// This is the single seam where a more permissive rule (say, semver ranges)
// would go; Encode and Decode only ever consult this predicate.
func Compatible(current, found string) bool {
	if current == found {
		return true
	}
	return current == VersionUnknown || found == VersionUnknown
}
