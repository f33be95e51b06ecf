package id

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Prefixes used by the in-memory backend.
const (
	PrefixLink  = "link"
	PrefixNote  = "note"
	PrefixLabel = "label"
)

// Generate creates a prefixed unique ID, e.g. "link-V1StGXR8_Z5jdHi6B-myT".
func Generate(prefix string) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate nanoid: %w", err)
	}
	return prefix + "-" + id, nil
}
