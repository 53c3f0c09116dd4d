// Package store contains the social state store interface.
package store

import (
	"context"
	"fmt"

	"github.com/Decentr-net/go-api/health"

	"github.com/nexus-social/nexus/internal/entities"
)

//go:generate mockgen -destination=./mock/store.go -package=mock -source=store.go

// ErrNotInitialized is returned when an operation which requires an
// initialized store is invoked before Initialize. It indicates a wiring
// error in the caller, not a data condition.
var ErrNotInitialized = fmt.Errorf("store is not initialized")

// ErrInvalidFilter is returned when the filter selector is set to a label
// outside the closed enumeration.
var ErrInvalidFilter = fmt.Errorf("invalid filter label")

// FilterAll is the filter selector matching every post.
const FilterAll = "All"

// Batch sizes for content provider requests.
const (
	InitialBatchSize = 5
	DefaultBatchSize = 3
)

// CreatePostParams ...
type CreatePostParams struct {
	Caption     string
	FileName    string
	ContentType string
	Data        []byte
}

// Store is the single source of truth for posts, stories, notifications and
// the current user. Read accessors return snapshots: independent copies the
// caller may not use to mutate canonical state.
//
// Mutations on unknown post ids are silent no-ops. Initialize and LoadMore
// cross an asynchronous boundary at the content provider call; a provider
// failure degrades to zero items produced and is never returned as an error.
type Store interface {
	health.Pinger

	Initialize(ctx context.Context) error
	LoadMore(ctx context.Context, count int) error

	CreatePost(p CreatePostParams) (entities.Post, error)
	ToggleLike(postID string)
	ToggleSave(postID string)
	AddComment(postID, text string) *entities.Comment
	SetFilter(label string) error
	SearchPosts(query string) []entities.Post
	MarkNotificationsRead()

	CurrentUser() entities.User
	Posts() []entities.Post
	Stories() []entities.Story
	Notifications() []entities.Notification
	Loading() bool
	Filter() string
}
