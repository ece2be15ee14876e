package store

import (
	"bytes"
	"crypto/subtle"
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// stampDomainKey is the fixed 32-byte key for BLAKE3 keyed hashing of
// snapshot fields. The byte values are the ASCII encoding of the domain
// name, zero-padded to 32 bytes: readable in hex dumps without giving up
// any property of BLAKE3 keyed mode. Changing it invalidates every stored
// stamp.
var stampDomainKey = [32]byte{
	't', 'o', 'k', 'e', 'n', 'l', 'e', 'd', 'g', 'e', 'r', '.',
	's', 'n', 'a', 'p', 's', 'h', 'o', 't', '.', 'v', '1',
	0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// ComputeStamp returns the hex-encoded keyed digest over the snapshot's
// logical fields and the install identifier. The stamp binds a snapshot to
// the install that wrote it: the same fields written on another install
// produce a different stamp.
func ComputeStamp(snap *Snapshot, installID string) string {
	var b bytes.Buffer
	writeField := func(s string) {
		b.WriteString(s)
		b.WriteByte(0)
	}
	var scratch [8]byte
	writeInt := func(n int) {
		binary.LittleEndian.PutUint64(scratch[:], uint64(int64(n)))
		b.Write(scratch[:])
	}

	writeField(snap.ConversationID)
	writeField(installID)
	writeInt(snap.TotalTokens)
	writeInt(snap.SystemTokens)
	writeInt(snap.MessageCount)

	hasher, err := blake3.NewKeyed(stampDomainKey[:])
	if err != nil {
		// NewKeyed fails only on a wrong key length; the key is a
		// compile-time constant of the right size.
		panic("store: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(b.Bytes())
	return hex.EncodeToString(hasher.Sum(nil))
}

// VerifyStamp reports whether the snapshot's stamp matches its fields and
// the install identifier. Comparison is constant-time.
func VerifyStamp(snap *Snapshot, installID string) bool {
	want := ComputeStamp(snap, installID)
	return subtle.ConstantTimeCompare([]byte(want), []byte(snap.Stamp)) == 1
}
