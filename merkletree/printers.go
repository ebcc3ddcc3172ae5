package merkletree

import (
	"encoding/hex"
	"strings"
)

// debug utilities

func proofStringer(proof Proof, outputLen int, sep string) string {
	var chunks []string

	for i := 0; i+outputLen <= len(proof); i += outputLen {
		chunks = append(chunks, hex.EncodeToString(proof[i:i+outputLen]))
	}
	return strings.Join(chunks, sep)
}

func levelStringer(t *Tree, sep string) string {

	var levels []string

	levelStart := uint64(0)
	levelLen := t.leafCount
	for levelLen > 0 {
		levelLen += levelLen & 1
		var level []string
		for i := uint64(0); i < levelLen; i++ {
			level = append(level, hex.EncodeToString(t.node(levelStart+i)))
		}
		levels = append(levels, strings.Join(level, " "))
		levelStart += levelLen
		levelLen /= 2
		if levelLen == 1 {
			levels = append(levels, hex.EncodeToString(t.node(levelStart)))
			break
		}
	}
	return strings.Join(levels, sep)
}
