package wire

import (
	"bytes"
	"crypto/sha256"
	"testing"
)

func mustDecode(t *testing.T, b []byte) ([32]byte, []byte) {
	t.Helper()
	sum, p, err := DecodeEntry(b)
	if err != nil {
		t.Fatalf("DecodeEntry error: %v", err)
	}
	return sum, p
}

func TestEntryRoundTrip(t *testing.T) {
	payloads := [][]byte{nil, []byte("hello"), {0, 1, 2, 3, 4}}
	for _, payload := range payloads {
		sum := sha256.Sum256([]byte("raw registry bytes"))
		enc := EncodeEntry(sum, payload)
		gotSum, gotPayload := mustDecode(t, enc)
		if gotSum != sum {
			t.Fatalf("sum mismatch: got %x want %x", gotSum, sum)
		}
		if !bytes.Equal(gotPayload, payload) {
			t.Fatalf("payload mismatch: got %x want %x", gotPayload, payload)
		}
	}
}

func TestEntryRejectsTrailingBytes(t *testing.T) {
	enc := EncodeEntry(sha256.Sum256([]byte("x")), []byte("p"))
	enc = append(enc, 0xDE, 0xAD)
	if _, _, err := DecodeEntry(enc); err == nil {
		t.Fatalf("expected error on trailing bytes")
	}
}

func TestEntryRejectsCorruptHeader(t *testing.T) {
	enc := EncodeEntry(sha256.Sum256([]byte("x")), []byte("abc"))

	badMagic := append([]byte(nil), enc...)
	badMagic[0] = 'X'
	if _, _, err := DecodeEntry(badMagic); err == nil {
		t.Fatalf("expected error on bad magic")
	}

	badVer := append([]byte(nil), enc...)
	badVer[4] = version + 1
	if _, _, err := DecodeEntry(badVer); err == nil {
		t.Fatalf("expected error on bad version")
	}

	for cut := 1; cut < len(enc); cut++ {
		if _, _, err := DecodeEntry(enc[:len(enc)-cut]); err == nil {
			t.Fatalf("expected error on truncation by %d", cut)
		}
	}
}
