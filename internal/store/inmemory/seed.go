package inmemory

import (
	"fmt"
	"time"

	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/ident"
)

// currentUser returns the profile of the single logical user of the session.
func currentUser() entities.User {
	return entities.User{
		ID:        "current-user",
		Name:      "Alex Rivera",
		Handle:    "@arivera_dev",
		AvatarURL: "https://picsum.photos/seed/me/150/150",
		Label:     entities.LabelDeveloper,
		Followers: 1205,
		Following: 348,
		Bio:       "Building things for the web. Coffee first.",
	}
}

// seedPosts returns the fixed posts owned by the current user. They are in
// place before any provider round-trip so the profile view is never empty.
func seedPosts(owner entities.User, now time.Time) []entities.Post {
	captions := []string{
		"Late night refactor session. The tests are finally green.",
		"New desk setup. Yes, the second monitor is vertical.",
	}

	out := make([]entities.Post, 0, len(captions))
	for i, caption := range captions {
		id := ident.New()

		out = append(out, entities.Post{
			ID:        id,
			OwnerID:   owner.ID,
			Owner:     owner,
			MediaURL:  fmt.Sprintf(postMediaURLTemplate, ident.Seed(id, mediaSeedMod)),
			MediaType: entities.MediaImage,
			Caption:   caption,
			CreatedAt: now.Add(-time.Duration(i+1) * time.Hour),
		})
	}

	return out
}

// seedNotifications builds the fixed activity entries shown on first load.
// Actors are taken from provider-generated users, so a failed provider call
// yields no notifications at all.
func seedNotifications(generated []entities.Post, target *entities.Post, now time.Time) []entities.Notification {
	if len(generated) < 2 {
		return nil
	}

	like := entities.Notification{
		ID:        ident.New(),
		Kind:      entities.NotificationLike,
		Actor:     generated[0].Owner,
		Message:   "liked your post.",
		CreatedAt: now.Add(-10 * time.Minute),
	}
	if target != nil {
		like.PostID = target.ID
		like.PreviewURL = target.MediaURL
	}

	follow := entities.Notification{
		ID:        ident.New(),
		Kind:      entities.NotificationFollow,
		Actor:     generated[1].Owner,
		Message:   "started following you.",
		CreatedAt: now.Add(-42 * time.Minute),
	}

	return []entities.Notification{like, follow}
}
