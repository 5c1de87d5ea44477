// Package hashid computes the deterministic node identities and content
// hashes the IR relies on for stable round-tripping across edits.
//
// Both functions are plain FNV-1a 32-bit digests, grounded on the same
// algorithm the teacher's internal/markdown/node.go uses for its node
// hashes, applied here to the two distinct inputs spec.md calls for:
// a structural-path identity (StableNodeID) and a content digest (FNV32).
package hashid

import (
	"encoding/hex"
	"hash/fnv"
)

// FNV32 returns the FNV-1a 32-bit digest of data.
func FNV32(data []byte) uint32 {
	h := fnv.New32a()
	h.Write(data)

	return h.Sum32()
}

// StableNodeID derives a deterministic node id from (docID, nodeType, path).
//
// Per spec.md I1/I2, the id depends only on these three inputs: identical
// input produces an identical id across runs, and content changes to the
// node never change it since content never enters the concatenation.
func StableNodeID(docID, nodeType, path string) string {
	buf := make([]byte, 0, len(docID)+len(nodeType)+len(path)+2)
	buf = append(buf, docID...)
	buf = append(buf, '|')
	buf = append(buf, nodeType...)
	buf = append(buf, '|')
	buf = append(buf, path...)

	sum := FNV32(buf)

	var enc [4]byte
	enc[0] = byte(sum >> 24)
	enc[1] = byte(sum >> 16)
	enc[2] = byte(sum >> 8)
	enc[3] = byte(sum)

	return hex.EncodeToString(enc[:])
}
