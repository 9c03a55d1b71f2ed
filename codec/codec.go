// Package codec provides pluggable (de)serializers for values of a fixed
// type. The registry's decode cache uses a Codec[runreg.Info] for its cached
// payloads; none of these codecs ever produce the registry's on-disk wire
// format, which is the strict canonical JSON handled by the root package.
package codec

// Codec encodes/decodes values V to []byte.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
