package resolve

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"github.com/speakeasy-api/edi"
)

// Fingerprint returns a deterministic hex digest of an instruction list. Two
// lists with the same ops, pop counts, segment use identities and targets in
// the same order share a fingerprint.
func Fingerprint(instructions []edi.Instruction) string {
	h := sha256.New()
	buf := make([]byte, 0, 64)
	for _, in := range instructions {
		buf = buf[:0]
		id, _ := in.UseID()
		buf = binary.AppendUvarint(buf, uint64(in.Op()))
		buf = binary.AppendUvarint(buf, uint64(in.PopCount()))
		buf = binary.AppendUvarint(buf, uint64(id))
		buf = binary.AppendUvarint(buf, uint64(len(in.Target())))
		buf = append(buf, in.Target()...)
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
