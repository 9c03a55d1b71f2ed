package codec

import "fmt"

// Limit wraps another codec and rejects oversized payloads at Decode time.
// Encode is forwarded to Inner unchanged. If MaxDecode <= 0, limiting is
// disabled. Use it when payloads come from a shared store that other
// processes can write to.
type Limit[V any] struct {
	// Inner is the underlying codec. It must be set.
	Inner Codec[V]
	// MaxDecode is the maximum permitted payload length in bytes. Longer
	// inputs fail without invoking Inner.
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }
func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
