// Package runreg implements the interchange format for a registry of running
// local server instances. Each instance describes itself with an Info record;
// Encode and Decode translate records to and from a canonical JSON string with
// strict validation on both sides, so that text written by one build of the
// software is either fully trusted or fully rejected by another.
//
// Components:
//   - Info: the registry entry (version, start time, port, pid, paths, cache key).
//   - Encode/Decode: the strict, round-trippable serialization core. Pure
//     functions, no I/O, safe for concurrent use.
//   - Compatible: the version compatibility rule shared by both directions.
//   - registry.Manager: persists entries via a pluggable store.Store
//     (filesystem directory by default, Redis for shared setups).
//   - cache.Cache: optional content-hash-validated cache of decoded entries
//     for callers that rescan the registry frequently.
//
// Decode is the trust boundary: input may come from another process, another
// build, or a corrupted file, so it enforces JSON well-formedness, the exact
// eight-key field set, version compatibility, and per-field types, in that
// order. Failures are typed (ParseError, ShapeError, KeySetError,
// VersionError, TypeMismatchError) and name the offending input.
package runreg
