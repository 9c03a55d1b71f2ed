package runreg

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
)

// CacheKey derives the opaque value stored in Info.CacheKey from the launch
// parameters of an instance: the working directory it was started from, its
// command-line arguments, and any programmatic configuration. Two launches
// with identical triples produce identical keys, so the registry can tell
// "same server, reuse it" from "same logdir, different flags".
//
// The key is base64 of canonical JSON (sorted keys, compact separators, no
// HTML escaping), which keeps it stable across processes and platforms.
func CacheKey(workingDirectory string, arguments []string, configureKwargs map[string]any) (string, error) {
	if arguments == nil {
		arguments = []string{}
	}
	if configureKwargs == nil {
		configureKwargs = map[string]any{}
	}
	datum := map[string]any{
		"working_directory": workingDirectory,
		"arguments":         arguments,
		"configure_kwargs":  configureKwargs,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(datum); err != nil {
		return "", err
	}
	raw := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return base64.StdEncoding.EncodeToString(raw), nil
}
