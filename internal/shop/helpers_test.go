package shop

import (
	"bytes"

	"github.com/roach88/smartstock/internal/backup"
)

func encodeJSON(doc backup.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := backup.Encode(&buf, doc, backup.FormatJSON); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
