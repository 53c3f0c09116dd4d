// Package generator contains the content provider contract.
package generator

import (
	"context"

	"github.com/nexus-social/nexus/internal/entities"
)

//go:generate mockgen -destination=./mock/generator.go -package=mock -source=generator.go

// PostSeed is a candidate post record produced by a provider. The store
// hydrates it with ids, media references and timestamps.
type PostSeed struct {
	Name    string
	Handle  string
	Label   entities.UserLabel
	Caption string
	Likes   int
}

// Generator produces batches of candidate post records. It may return fewer
// items than requested or an empty batch; callers treat a failure as zero
// items produced.
type Generator interface {
	GeneratePosts(ctx context.Context, count int) ([]PostSeed, error)
}
