package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"oqa/internal/dataset"
)

// FingerprintTable returns a SHA-256 hex digest identifying an item table.
// JSON object keys marshal in sorted order, so the encoding is canonical
// for any map layout of the same table.
func FingerprintTable(table dataset.Table) string {
	data, err := json.Marshal(table)
	if err != nil {
		// Tables are string-to-string maps; marshaling cannot fail.
		return ""
	}
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
