package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data. The pipeline uses it to
// identify a diagram document; [FileCache] uses it to name entry files.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// digestKey returns "<kind>:<digest>" where digest covers the JSON encoding
// of parts. Struct options are encoded with their field tags, so adding an
// option changes every key.
func digestKey(kind string, parts ...any) string {
	data, err := json.Marshal(parts)
	if err != nil {
		// Key parts are strings and tagged structs; this is unreachable.
		panic("cache: encode key parts: " + err.Error())
	}
	return kind + ":" + Hash(data)
}
