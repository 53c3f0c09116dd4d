package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi"

	"github.com/nexus-social/nexus/internal/store"
	"github.com/nexus-social/nexus/internal/views"
)

func (s server) getFeed(w http.ResponseWriter, r *http.Request) {
	filter := s.s.Filter()

	writeOK(w, http.StatusOK, FeedResponse{
		Posts:   toAPIPosts(views.FilteredFeed(s.s.Posts(), filter)),
		Filter:  filter,
		Loading: s.s.Loading(),
	})
}

func (s server) setFilter(w http.ResponseWriter, r *http.Request) {
	var req SetFilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if err := s.s.SetFilter(req.Label); err != nil {
		if errors.Is(err, store.ErrInvalidFilter) {
			writeError(w, http.StatusBadRequest, "invalid filter label")
			return
		}

		writeError(w, http.StatusInternalServerError, "failed to set filter")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) loadMore(w http.ResponseWriter, r *http.Request) {
	// the in-flight guard makes an overlapping call harmless, but the
	// caller gets told its request was not served
	if s.s.Loading() {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	var req LoadMoreRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request")
			return
		}
	}

	if err := s.s.LoadMore(r.Context(), req.Count); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load more posts")
		return
	}

	s.getFeed(w, r)
}

func (s server) searchPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	writeOK(w, http.StatusOK, FeedResponse{
		Posts:   toAPIPosts(s.s.SearchPosts(query)),
		Filter:  s.s.Filter(),
		Loading: s.s.Loading(),
	})
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("media")
	if err != nil {
		writeError(w, http.StatusBadRequest, "media file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read media file")
		return
	}

	post, err := s.s.CreatePost(store.CreatePostParams{
		Caption:     r.FormValue("caption"),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	writeOK(w, http.StatusCreated, toAPIPost(post))
}

func (s server) toggleLike(w http.ResponseWriter, r *http.Request) {
	s.s.ToggleLike(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s server) toggleSave(w http.ResponseWriter, r *http.Request) {
	s.s.ToggleSave(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "comment text is required")
		return
	}

	c := s.s.AddComment(chi.URLParam(r, "id"), req.Text)
	if c == nil {
		// unknown post id is a silent no-op by the store contract
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeOK(w, http.StatusCreated, toAPIComment(*c))
}

func (s server) getStories(w http.ResponseWriter, r *http.Request) {
	stories := s.s.Stories()

	out := make([]Story, 0, len(stories))
	for _, v := range stories {
		out = append(out, toAPIStory(v))
	}

	writeOK(w, http.StatusOK, out)
}

func (s server) getNotifications(w http.ResponseWriter, r *http.Request) {
	ns := s.s.Notifications()

	out := make([]Notification, 0, len(ns))
	for _, v := range ns {
		out = append(out, toAPINotification(v))
	}

	writeOK(w, http.StatusOK, NotificationsResponse{
		Notifications: out,
		Unread:        views.HasUnread(ns),
	})
}

func (s server) markNotificationsRead(w http.ResponseWriter, r *http.Request) {
	s.s.MarkNotificationsRead()
	w.WriteHeader(http.StatusNoContent)
}

func (s server) getProfile(w http.ResponseWriter, r *http.Request) {
	u := s.s.CurrentUser()

	tab := views.ProfileTab(r.URL.Query().Get("tab"))
	switch tab {
	case views.TabPosts, views.TabSaved, views.TabTagged:
	case "":
		tab = views.TabPosts
	default:
		writeError(w, http.StatusBadRequest, "invalid tab")
		return
	}

	writeOK(w, http.StatusOK, ProfileResponse{
		User:  toAPIUser(u),
		Tab:   string(tab),
		Posts: toAPIPosts(views.ProfilePosts(s.s.Posts(), u.ID, tab)),
	})
}

func (s server) getMedia(w http.ResponseWriter, r *http.Request) {
	o, ok := s.m.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "media not found")
		return
	}

	w.Header().Set("Content-Type", o.ContentType)
	_, _ = w.Write(o.Data)
}

// getSuggestions returns a few synthetic users to follow. Derived from the
// current post collection; cached by the router.
func (s server) getSuggestions(w http.ResponseWriter, r *http.Request) {
	current := s.s.CurrentUser()

	out := make([]User, 0, suggestionsLimit)
	seen := map[string]struct{}{current.ID: {}}

	for _, p := range s.s.Posts() {
		if _, ok := seen[p.OwnerID]; ok {
			continue
		}
		seen[p.OwnerID] = struct{}{}

		out = append(out, toAPIUser(p.Owner))
		if len(out) == suggestionsLimit {
			break
		}
	}

	writeOK(w, http.StatusOK, out)
}
