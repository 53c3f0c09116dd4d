// Package ident produces identifiers for locally synthesized records.
package ident

import (
	"hash/fnv"

	"github.com/google/uuid"
)

// New returns an identifier unique within a running session.
func New() string {
	return uuid.NewString()
}

// Seed derives a small deterministic number from an identifier. It is used
// to build reproducible media references for generated content.
func Seed(id string, mod uint32) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))

	return h.Sum32() % mod
}
