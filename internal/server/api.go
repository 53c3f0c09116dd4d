package server

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/nexus-social/nexus/internal/entities"
)

const suggestionsLimit = 3

// Error ...
type Error struct {
	Error string `json:"error"`
}

// User ...
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Handle    string `json:"handle"`
	AvatarURL string `json:"avatar_url"`
	Label     string `json:"label"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Bio       string `json:"bio,omitempty"`
}

// Comment ...
type Comment struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Text      string `json:"text"`
	CreatedAt uint64 `json:"created_at"`
}

// Post ...
type Post struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Owner     User      `json:"owner"`
	MediaURL  string    `json:"media_url"`
	MediaType string    `json:"media_type"`
	Caption   string    `json:"caption"`
	Likes     int       `json:"likes"`
	Comments  []Comment `json:"comments"`
	CreatedAt uint64    `json:"created_at"`
	Liked     bool      `json:"liked"`
	Saved     bool      `json:"saved"`
}

// Story ...
type Story struct {
	ID       string `json:"id"`
	OwnerID  string `json:"owner_id"`
	Owner    User   `json:"owner"`
	MediaURL string `json:"media_url"`
	Viewed   bool   `json:"viewed"`
}

// Notification ...
type Notification struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Actor      User   `json:"actor"`
	PostID     string `json:"post_id,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
	Message    string `json:"message"`
	CreatedAt  uint64 `json:"created_at"`
	Read       bool   `json:"read"`
}

// FeedResponse ...
type FeedResponse struct {
	Posts   []Post `json:"posts"`
	Filter  string `json:"filter"`
	Loading bool   `json:"loading"`
}

// ProfileResponse ...
type ProfileResponse struct {
	User  User   `json:"user"`
	Tab   string `json:"tab"`
	Posts []Post `json:"posts"`
}

// NotificationsResponse ...
type NotificationsResponse struct {
	Notifications []Notification `json:"notifications"`
	Unread        bool           `json:"unread"`
}

// SetFilterRequest ...
type SetFilterRequest struct {
	Label string `json:"label"`
}

// LoadMoreRequest ...
type LoadMoreRequest struct {
	Count int `json:"count"`
}

// AddCommentRequest ...
type AddCommentRequest struct {
	Text string `json:"text"`
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func toAPIUser(u entities.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Handle:    u.Handle,
		AvatarURL: u.AvatarURL,
		Label:     string(u.Label),
		Followers: u.Followers,
		Following: u.Following,
		Bio:       u.Bio,
	}
}

func toAPIComment(c entities.Comment) Comment {
	return Comment{
		ID:        c.ID,
		UserID:    c.UserID,
		Username:  c.Username,
		AvatarURL: c.AvatarURL,
		Text:      c.Text,
		CreatedAt: uint64(c.CreatedAt.Unix()),
	}
}

func toAPIPost(p entities.Post) Post {
	comments := make([]Comment, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, toAPIComment(c))
	}

	return Post{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Owner:     toAPIUser(p.Owner),
		MediaURL:  p.MediaURL,
		MediaType: string(p.MediaType),
		Caption:   p.Caption,
		Likes:     p.Likes,
		Comments:  comments,
		CreatedAt: uint64(p.CreatedAt.Unix()),
		Liked:     p.Liked,
		Saved:     p.Saved,
	}
}

func toAPIPosts(p []entities.Post) []Post {
	out := make([]Post, 0, len(p))
	for _, v := range p {
		out = append(out, toAPIPost(v))
	}

	return out
}

func toAPIStory(s entities.Story) Story {
	return Story{
		ID:       s.ID,
		OwnerID:  s.OwnerID,
		Owner:    toAPIUser(s.Owner),
		MediaURL: s.MediaURL,
		Viewed:   s.Viewed,
	}
}

func toAPINotification(n entities.Notification) Notification {
	return Notification{
		ID:         n.ID,
		Kind:       string(n.Kind),
		Actor:      toAPIUser(n.Actor),
		PostID:     n.PostID,
		PreviewURL: n.PreviewURL,
		Message:    n.Message,
		CreatedAt:  uint64(n.CreatedAt.Unix()),
		Read:       n.Read,
	}
}
