// Package views contains pure derivations over store snapshots. Nothing
// here mutates its input.
package views

import (
	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/store"
)

// ProfileTab ...
type ProfileTab string

// nolint:golint
const (
	TabPosts  ProfileTab = "posts"
	TabSaved  ProfileTab = "saved"
	TabTagged ProfileTab = "tagged"
)

// FilteredFeed returns posts matching the filter selector, order preserved.
// The selector "All" matches everything.
func FilteredFeed(posts []entities.Post, filter string) []entities.Post {
	if filter == store.FilterAll {
		return posts
	}

	out := make([]entities.Post, 0, len(posts))
	for _, p := range posts {
		if string(p.Owner.Label) == filter {
			out = append(out, p)
		}
	}

	return out
}

// ProfilePosts returns the profile-view subset for a user. The tagged tab is
// permanently empty by design.
func ProfilePosts(posts []entities.Post, userID string, tab ProfileTab) []entities.Post {
	out := make([]entities.Post, 0, len(posts))

	switch tab {
	case TabSaved:
		for _, p := range posts {
			if p.Saved {
				out = append(out, p)
			}
		}
	case TabTagged:
	default:
		for _, p := range posts {
			if p.OwnerID == userID {
				out = append(out, p)
			}
		}
	}

	return out
}

// HasUnread reports whether any notification is still unread.
func HasUnread(ns []entities.Notification) bool {
	for _, n := range ns {
		if !n.Read {
			return true
		}
	}

	return false
}
