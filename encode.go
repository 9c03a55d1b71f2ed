package runreg

import "encoding/json"

// wireKeys is the exact key set of the serialized form, in emission order.
// Decode enforces this set; wireInfo's field order must stay in sync so that
// Encode emits keys in the same stable order (diff-friendly output).
var wireKeys = []string{
	"version", "start_time", "port", "pid",
	"path_prefix", "logdir", "db", "cache_key",
}

type wireInfo struct {
	Version    string `json:"version"`
	StartTime  int64  `json:"start_time"` // epoch seconds
	Port       int    `json:"port"`
	PID        int    `json:"pid"`
	PathPrefix string `json:"path_prefix"`
	Logdir     string `json:"logdir"`
	DB         string `json:"db"`
	CacheKey   string `json:"cache_key"`
}

// Encode serializes info to its canonical JSON form.
//
// info.Version must equal Version exactly; Encode runs inside the build it
// describes, so anything else is a *VersionMismatchError. StartTime is
// written as whole epoch seconds (sub-second precision is dropped).
func Encode(info Info) (string, error) {
	if info.Version != Version {
		return "", &VersionMismatchError{Expected: Version, Found: info.Version}
	}
	b, err := json.Marshal(wireInfo{
		Version:    info.Version,
		StartTime:  info.StartTime.Unix(),
		Port:       info.Port,
		PID:        info.PID,
		PathPrefix: info.PathPrefix,
		Logdir:     info.Logdir,
		DB:         info.DB,
		CacheKey:   info.CacheKey,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
