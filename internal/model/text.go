package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText trims s and normalises it to NFC.
// Thai keyboards and some phones emit decomposed vowel/tone mark sequences;
// normalising keeps names comparable.
func CleanText(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
