package runreg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Decode parses and validates one serialized registry entry.
//
// Validation is staged, and each stage short-circuits so callers get the most
// fundamental error first:
//
//  1. text must be a single well-formed JSON value (*ParseError)
//  2. that value must be an object (*ShapeError)
//  3. the key set must be exactly the eight wire keys (*KeySetError)
//  4. version must be Compatible with this build (*VersionError)
//  5. every field must have its schema type (*TypeMismatchError)
//
// On success the returned Info is fully populated and schema-valid.
func Decode(text string) (Info, error) {
	var zero Info

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return zero, &ParseError{Input: text, Err: err}
	}
	if err := dec.Decode(new(any)); err != io.EOF {
		return zero, &ParseError{Input: text, Err: errors.New("trailing data after JSON value")}
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return zero, &ShapeError{Input: text}
	}

	if !keysMatch(obj) {
		found := make([]string, 0, len(obj))
		for k := range obj {
			found = append(found, k)
		}
		return zero, &KeySetError{Found: found}
	}

	// The version value is compared before its type is considered: a
	// non-string version can never match, so it reads as an incompatible
	// version rather than a type error.
	version, ok := obj["version"].(string)
	if !ok {
		return zero, &VersionError{Expected: Version, Found: fmt.Sprint(obj["version"])}
	}
	if !Compatible(Version, version) {
		return zero, &VersionError{Expected: Version, Found: version}
	}

	startTime, err := intField(obj, "start_time")
	if err != nil {
		return zero, err
	}
	port, err := intField(obj, "port")
	if err != nil {
		return zero, err
	}
	pid, err := intField(obj, "pid")
	if err != nil {
		return zero, err
	}
	pathPrefix, err := stringField(obj, "path_prefix")
	if err != nil {
		return zero, err
	}
	logdir, err := stringField(obj, "logdir")
	if err != nil {
		return zero, err
	}
	db, err := stringField(obj, "db")
	if err != nil {
		return zero, err
	}
	cacheKey, err := stringField(obj, "cache_key")
	if err != nil {
		return zero, err
	}

	return Info{
		Version:    version,
		StartTime:  time.Unix(startTime, 0),
		Port:       int(port),
		PID:        int(pid),
		PathPrefix: pathPrefix,
		Logdir:     logdir,
		DB:         db,
		CacheKey:   cacheKey,
	}, nil
}

func keysMatch(obj map[string]any) bool {
	if len(obj) != len(wireKeys) {
		return false
	}
	for _, k := range wireKeys {
		if _, ok := obj[k]; !ok {
			return false
		}
	}
	return true
}

// intField extracts an integer-valued JSON number. Numbers with a fractional
// part are a type mismatch, not a truncation.
func intField(obj map[string]any, name string) (int64, error) {
	if n, ok := obj[name].(json.Number); ok {
		if v, err := n.Int64(); err == nil {
			return v, nil
		}
	}
	return 0, &TypeMismatchError{Field: name, Want: "int", Value: obj[name]}
}

func stringField(obj map[string]any, name string) (string, error) {
	s, ok := obj[name].(string)
	if !ok {
		return "", &TypeMismatchError{Field: name, Want: "string", Value: obj[name]}
	}
	return s, nil
}
