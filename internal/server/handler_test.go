package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/media"
	"github.com/nexus-social/nexus/internal/store"
	"github.com/nexus-social/nexus/internal/store/mock"
)

func newTestRouter(t *testing.T) (chi.Router, *mock.MockStore, *media.Registry) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	s := mock.NewMockStore(ctrl)
	m := media.NewRegistry()

	r := chi.NewRouter()
	SetupRouter(s, m, r)

	return r, s, m
}

func testEntityPosts() []entities.Post {
	timestamp := time.Unix(100, 0)

	return []entities.Post{
		{
			ID:        "p1",
			OwnerID:   "u1",
			Owner:     entities.User{ID: "u1", Name: "Jane", Handle: "@jane", Label: entities.LabelDeveloper},
			MediaURL:  "https://picsum.photos/seed/1/800/800",
			MediaType: entities.MediaImage,
			Caption:   "hello",
			Likes:     3,
			CreatedAt: timestamp,
		},
		{
			ID:        "p2",
			OwnerID:   "u2",
			Owner:     entities.User{ID: "u2", Name: "Marcus", Handle: "@marcus", Label: entities.LabelActor},
			MediaURL:  "https://picsum.photos/seed/2/800/800",
			MediaType: entities.MediaImage,
			Caption:   "sound check",
			Likes:     7,
			CreatedAt: timestamp,
		},
	}
}

func Test_getFeed(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().Filter().Return(string(entities.LabelDeveloper))
	s.EXPECT().Posts().Return(testEntityPosts())
	s.EXPECT().Loading().Return(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/feed", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// only the developer-owned post passes the filter
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "p1", resp.Posts[0].ID)
	assert.Equal(t, "Developer", resp.Filter)
	assert.False(t, resp.Loading)
}

func Test_setFilter(t *testing.T) {
	tt := []struct {
		name string
		body string
		err  error

		code int
	}{
		{
			name: "success",
			body: `{"label":"Musician"}`,
			code: http.StatusNoContent,
		},
		{
			name: "invalid label",
			body: `{"label":"Astronaut"}`,
			err:  store.ErrInvalidFilter,
			code: http.StatusBadRequest,
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			router, s, _ := newTestRouter(t)

			s.EXPECT().SetFilter(gomock.Any()).Return(tc.err)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/feed/filter", strings.NewReader(tc.body)))

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func Test_setFilter_malformed(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/feed/filter", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_loadMore(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().Loading().Return(false)
	s.EXPECT().LoadMore(gomock.Any(), 3).Return(nil)
	// the refreshed feed is rendered back
	s.EXPECT().Filter().Return(store.FilterAll)
	s.EXPECT().Posts().Return(testEntityPosts())
	s.EXPECT().Loading().Return(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/feed/more", strings.NewReader(`{"count":3}`)))

	require.Equal(t, http.StatusOK, w.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Posts, 2)
}

func Test_loadMore_inFlight(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().Loading().Return(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/feed/more", strings.NewReader(`{"count":3}`)))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func Test_searchPosts(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().SearchPosts("jane").Return(testEntityPosts()[:1])
	s.EXPECT().Filter().Return(store.FilterAll)
	s.EXPECT().Loading().Return(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/search?query=jane", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp FeedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "p1", resp.Posts[0].ID)
}

func Test_createPost(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().CreatePost(gomock.Any()).DoAndReturn(func(p store.CreatePostParams) (entities.Post, error) {
		assert.Equal(t, "first post", p.Caption)
		assert.Equal(t, "cat.png", p.FileName)
		assert.Equal(t, "image/png", p.ContentType)
		assert.Equal(t, []byte("pngdata"), p.Data)

		return entities.Post{ID: "p3", Caption: p.Caption, MediaType: entities.MediaImage}, nil
	})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("caption", "first post"))

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="media"; filename="cat.png"`)
	h.Set("Content-Type", "image/png")
	fw, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = fw.Write([]byte("pngdata"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/v1/posts", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp Post
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "p3", resp.ID)
}

func Test_createPost_noMedia(t *testing.T) {
	router, _, _ := newTestRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("caption", "no file"))
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/v1/posts", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_toggleLike(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().ToggleLike("p1")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/posts/p1/like", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_toggleSave(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().ToggleSave("p2")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/posts/p2/save", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_addComment(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().AddComment("p1", "nice").Return(&entities.Comment{ID: "c1", Text: "nice"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/posts/p1/comments", strings.NewReader(`{"text":"nice"}`)))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "c1", resp.ID)
}

func Test_addComment_blank(t *testing.T) {
	router, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/posts/p1/comments", strings.NewReader(`{"text":"   "}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_addComment_unknownPost(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().AddComment("ghost", "hi").Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/posts/ghost/comments", strings.NewReader(`{"text":"hi"}`)))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_getNotifications(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().Notifications().Return([]entities.Notification{
		{ID: "n1", Kind: entities.NotificationLike, Message: "liked your post.", Read: true},
		{ID: "n2", Kind: entities.NotificationFollow, Message: "started following you."},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/notifications", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp NotificationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notifications, 2)
	assert.True(t, resp.Unread)
}

func Test_markNotificationsRead(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().MarkNotificationsRead()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/notifications/read", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func Test_getProfile(t *testing.T) {
	router, s, _ := newTestRouter(t)

	posts := testEntityPosts()
	posts[1].Saved = true

	s.EXPECT().CurrentUser().Return(entities.User{ID: "u1", Name: "Jane"})
	s.EXPECT().Posts().Return(posts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/profile?tab=saved", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp ProfileResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "saved", resp.Tab)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "p2", resp.Posts[0].ID)
}

func Test_getProfile_invalidTab(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().CurrentUser().Return(entities.User{ID: "u1"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/profile?tab=bogus", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_getMedia(t *testing.T) {
	router, _, m := newTestRouter(t)

	o := m.Add("cat.png", "image/png", []byte("pngdata"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, o.URL(), nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "pngdata", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/media/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_getSuggestions(t *testing.T) {
	router, s, _ := newTestRouter(t)

	s.EXPECT().CurrentUser().Return(entities.User{ID: "u1"})
	s.EXPECT().Posts().Return(testEntityPosts())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/suggestions", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp []User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// the current user is never suggested to themselves
	require.Len(t, resp, 1)
	assert.Equal(t, "u2", resp[0].ID)
}
