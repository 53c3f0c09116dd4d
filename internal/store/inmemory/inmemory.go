// Package inmemory is implementation of store interface.
package inmemory

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jinzhu/copier"
	"github.com/sirupsen/logrus"

	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/generator"
	"github.com/nexus-social/nexus/internal/ident"
	"github.com/nexus-social/nexus/internal/media"
	"github.com/nexus-social/nexus/internal/store"
)

var log = logrus.WithField("layer", "store").WithField("package", "inmemory")

const (
	avatarURLTemplate    = "https://picsum.photos/seed/%s/150/150"
	postMediaURLTemplate = "https://picsum.photos/seed/%d/800/800"

	mediaSeedMod   = 1000
	followersLimit = 10000
)

type inmem struct {
	mu sync.Mutex

	gen   generator.Generator
	media *media.Registry

	currentUser   entities.User
	posts         []entities.Post
	stories       []entities.Story
	notifications []entities.Notification

	loading     bool
	filter      string
	initialized bool

	now func() time.Time
}

// New creates new instance of inmem. A nil generator or registry is a
// composition error and panics immediately.
func New(g generator.Generator, m *media.Registry) store.Store {
	if g == nil {
		panic("inmemory: nil generator")
	}
	if m == nil {
		panic("inmemory: nil media registry")
	}

	return &inmem{
		gen:    g,
		media:  m,
		filter: store.FilterAll,
		now:    time.Now,
	}
}

func (s *inmem) Initialize(ctx context.Context) error {
	s.mu.Lock()
	if s.initialized {
		s.mu.Unlock()
		return nil
	}

	s.initialized = true
	s.loading = true
	s.currentUser = currentUser()
	s.posts = seedPosts(s.currentUser, s.now())
	s.mu.Unlock()

	posts := s.generate(ctx, store.InitialBatchSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts = append(s.posts, posts...)

	s.stories = make([]entities.Story, 0, len(posts))
	for _, p := range posts {
		s.stories = append(s.stories, entities.Story{
			ID:       ident.New(),
			OwnerID:  p.OwnerID,
			Owner:    p.Owner,
			MediaURL: p.MediaURL,
		})
	}

	s.notifications = seedNotifications(posts, firstOwnedBy(s.posts, s.currentUser.ID), s.now())

	s.loading = false

	log.WithField("posts", len(s.posts)).
		WithField("stories", len(s.stories)).
		WithField("notifications", len(s.notifications)).
		Info("store initialized")

	return nil
}

func (s *inmem) LoadMore(ctx context.Context, count int) error {
	if count <= 0 {
		count = store.DefaultBatchSize
	}

	s.mu.Lock()
	if !s.initialized {
		s.mu.Unlock()
		return store.ErrNotInitialized
	}
	if s.loading {
		s.mu.Unlock()
		log.Debug("load already in flight, skipping")
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	posts := s.generate(ctx, count)

	s.mu.Lock()
	defer s.mu.Unlock()

	// append-only: existing posts keep their positions
	s.posts = append(s.posts, posts...)
	s.loading = false

	return nil
}

// generate requests a batch from the content provider and hydrates the
// returned seeds. A provider failure is a soft condition: it is logged and
// treated as zero items produced.
func (s *inmem) generate(ctx context.Context, count int) []entities.Post {
	seeds, err := s.gen.GeneratePosts(ctx, count)
	if err != nil {
		log.WithError(err).Warn("content provider failed, continuing without generated posts")
		seeds = nil
	}

	now := s.now()
	out := make([]entities.Post, 0, len(seeds))

	for _, seed := range seeds {
		u := entities.User{
			ID:        ident.New(),
			Name:      seed.Name,
			Handle:    seed.Handle,
			AvatarURL: fmt.Sprintf(avatarURLTemplate, seed.Handle),
			Label:     seed.Label,
			Followers: int(ident.Seed(seed.Handle, followersLimit)),
		}

		id := ident.New()

		out = append(out, entities.Post{
			ID:        id,
			OwnerID:   u.ID,
			Owner:     u,
			MediaURL:  fmt.Sprintf(postMediaURLTemplate, ident.Seed(id, mediaSeedMod)),
			MediaType: entities.MediaImage,
			Caption:   seed.Caption,
			Likes:     seed.Likes,
			CreatedAt: now,
		})
	}

	return out
}

func (s *inmem) CreatePost(p store.CreatePostParams) (entities.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return entities.Post{}, store.ErrNotInitialized
	}

	o := s.media.Add(p.FileName, p.ContentType, p.Data)

	post := entities.Post{
		ID:        ident.New(),
		OwnerID:   s.currentUser.ID,
		Owner:     s.currentUser,
		MediaURL:  o.URL(),
		MediaType: media.TypeOf(p.ContentType),
		Caption:   p.Caption,
		CreatedAt: s.now(),
	}

	// newest-first at the head
	s.posts = append([]entities.Post{post}, s.posts...)

	return post, nil
}

func (s *inmem) ToggleLike(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(postID)
	if i < 0 {
		return
	}

	p := &s.posts[i]
	if p.Liked {
		p.Liked = false
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.Liked = true
		p.Likes++
	}
}

func (s *inmem) ToggleSave(postID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(postID)
	if i < 0 {
		return
	}

	s.posts[i].Saved = !s.posts[i].Saved
}

func (s *inmem) AddComment(postID, text string) *entities.Comment {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(postID)
	if i < 0 {
		return nil
	}

	c := entities.Comment{
		ID:        ident.New(),
		UserID:    s.currentUser.ID,
		Username:  s.currentUser.Handle,
		AvatarURL: s.currentUser.AvatarURL,
		Text:      text,
		CreatedAt: s.now(),
	}

	s.posts[i].Comments = append(s.posts[i].Comments, c)

	out := c

	return &out
}

func (s *inmem) SetFilter(label string) error {
	if label != store.FilterAll && !entities.UserLabel(label).IsValid() {
		return fmt.Errorf("%w: %s", store.ErrInvalidFilter, label)
	}

	s.mu.Lock()
	s.filter = label
	s.mu.Unlock()

	return nil
}

func (s *inmem) SearchPosts(query string) []entities.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		return clonePosts(s.posts)
	}

	q := strings.ToLower(query)

	out := make([]entities.Post, 0)
	for _, p := range s.posts {
		if strings.Contains(strings.ToLower(p.Caption), q) ||
			strings.Contains(strings.ToLower(p.Owner.Name), q) ||
			strings.Contains(strings.ToLower(p.Owner.Handle), q) {
			out = append(out, p)
		}
	}

	return clonePosts(out)
}

func (s *inmem) MarkNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

func (s *inmem) CurrentUser() entities.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currentUser
}

func (s *inmem) Posts() []entities.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	return clonePosts(s.posts)
}

func (s *inmem) Stories() []entities.Story {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Story, len(s.stories))
	copy(out, s.stories)

	return out
}

func (s *inmem) Notifications() []entities.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entities.Notification, len(s.notifications))
	copy(out, s.notifications)

	return out
}

func (s *inmem) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *inmem) Filter() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.filter
}

// Ping implements health.Pinger. The store is healthy once initialized.
func (s *inmem) Ping(_ context.Context) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil, store.ErrNotInitialized
	}

	return map[string]interface{}{
		"posts":         len(s.posts),
		"stories":       len(s.stories),
		"notifications": len(s.notifications),
	}, nil
}

// Name implements health.Pinger.
func (s *inmem) Name() string {
	return "store"
}

// indexOf is called with the mutex held.
func (s *inmem) indexOf(postID string) int {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			return i
		}
	}

	return -1
}

// clonePosts deep-copies posts so the comment slices are not shared with
// canonical state.
func clonePosts(p []entities.Post) []entities.Post {
	out := make([]entities.Post, 0, len(p))
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		log.WithError(err).Error("failed to clone posts")
	}

	return out
}

func firstOwnedBy(posts []entities.Post, ownerID string) *entities.Post {
	for i := range posts {
		if posts[i].OwnerID == ownerID {
			return &posts[i]
		}
	}

	return nil
}
