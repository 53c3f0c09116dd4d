// Package entities contains main entities of service.
package entities

import (
	"time"
)

// UserLabel is a closed set of professional categories a user belongs to.
type UserLabel string

// nolint:golint
const (
	LabelDeveloper    UserLabel = "Developer"
	LabelMusician     UserLabel = "Musician"
	LabelActor        UserLabel = "Actor"
	LabelArtist       UserLabel = "Artist"
	LabelEntrepreneur UserLabel = "Entrepreneur"
	LabelEveryone     UserLabel = "Everyone"
)

// Labels returns the full enumeration in presentation order.
func Labels() []UserLabel {
	return []UserLabel{
		LabelDeveloper,
		LabelMusician,
		LabelActor,
		LabelArtist,
		LabelEntrepreneur,
		LabelEveryone,
	}
}

// IsValid ...
func (l UserLabel) IsValid() bool {
	switch l {
	case LabelDeveloper, LabelMusician, LabelActor, LabelArtist, LabelEntrepreneur, LabelEveryone:
		return true
	}
	return false
}

// MediaType ...
type MediaType string

// nolint:golint
const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// NotificationKind is a closed set of activity-feed entry kinds.
type NotificationKind string

// nolint:golint
const (
	NotificationLike    NotificationKind = "like"
	NotificationComment NotificationKind = "comment"
	NotificationFollow  NotificationKind = "follow"
)

// User ...
type User struct {
	ID        string
	Name      string
	Handle    string
	AvatarURL string
	Label     UserLabel
	Followers int
	Following int
	Bio       string
}

// Comment is a reply attached to exactly one post. Author fields are
// denormalized copies taken at creation time.
type Comment struct {
	ID        string
	UserID    string
	Username  string
	AvatarURL string
	Text      string
	CreatedAt time.Time
}

// Post is a unit of shared content. Owner is a snapshot of the owning user
// taken at creation time; later profile edits do not update it.
type Post struct {
	ID        string
	OwnerID   string
	Owner     User
	MediaURL  string
	MediaType MediaType
	Caption   string
	Likes     int
	Comments  []Comment
	CreatedAt time.Time
	Liked     bool
	Saved     bool
}

// Story ...
type Story struct {
	ID       string
	OwnerID  string
	Owner    User
	MediaURL string
	Viewed   bool
}

// Notification is an activity-feed entry about interaction with the current
// user's content. Read is monotonic: once set it is never cleared.
type Notification struct {
	ID         string
	Kind       NotificationKind
	Actor      User
	PostID     string
	PreviewURL string
	Message    string
	CreatedAt  time.Time
	Read       bool
}
