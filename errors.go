package runreg

import (
	"fmt"
	"sort"
	"strings"
)

// ParseError reports input that is not syntactically valid JSON.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON: %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ShapeError reports valid JSON whose top-level value is not an object.
type ShapeError struct {
	Input string
}

func (e *ShapeError) Error() string {
	return "not a JSON object: " + e.Input
}

// KeySetError reports an object whose key set is not exactly the wire schema:
// extra keys and missing keys both land here.
type KeySetError struct {
	Found []string
}

func (e *KeySetError) Error() string {
	found := append([]string(nil), e.Found...)
	sort.Strings(found)
	return fmt.Sprintf("bad keys on Info: found [%s], expected [%s]",
		strings.Join(found, ", "), strings.Join(wireKeys, ", "))
}

// VersionError reports a decoded version field that is incompatible with the
// running build (see Compatible).
type VersionError struct {
	Expected string
	Found    string
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("incompatible version: expected %q, found %q", e.Expected, e.Found)
}

// VersionMismatchError reports an encode of a record whose Version is not
// exactly the running build's Version. Encoding always means "describe
// myself", so any mismatch here is a caller bug, not a compatibility case.
type VersionMismatchError struct {
	Expected string
	Found    string
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("expected 'version' to be %q, but found: %q", e.Expected, e.Found)
}

// TypeMismatchError reports a field whose value has the wrong type.
type TypeMismatchError struct {
	Field string // wire name of the field
	Want  string // expected type, e.g. "int" or "string"
	Value any    // the offending value
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("expected %q of type %s, but found: %s", e.Field, e.Want, formatValue(e.Value))
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
