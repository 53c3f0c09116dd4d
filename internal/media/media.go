// Package media holds ephemeral media blobs for the lifetime of a session.
// It is the in-process analogue of an object URL: uploaded files are kept in
// memory and addressed by an opaque reference until the process exits.
package media

import (
	"strings"
	"sync"

	"github.com/nexus-social/nexus/internal/entities"
	"github.com/nexus-social/nexus/internal/ident"
)

// Object is a stored media blob.
type Object struct {
	ID          string
	Name        string
	ContentType string
	Data        []byte
}

// URL returns the session-local reference the object is served under.
func (o Object) URL() string {
	return "/v1/media/" + o.ID
}

// Registry ...
type Registry struct {
	mu      sync.Mutex
	objects map[string]Object
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		objects: make(map[string]Object),
	}
}

// Add stores a blob and returns the object with a fresh id. There is no
// release step: blobs live until the process exits.
func (r *Registry) Add(name, contentType string, data []byte) Object {
	o := Object{
		ID:          ident.New(),
		Name:        name,
		ContentType: contentType,
		Data:        data,
	}

	r.mu.Lock()
	r.objects[o.ID] = o
	r.mu.Unlock()

	return o
}

// Get returns a stored blob by id.
func (r *Registry) Get(id string) (Object, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.objects[id]

	return o, ok
}

// TypeOf infers the media kind from a declared content type.
func TypeOf(contentType string) entities.MediaType {
	if strings.HasPrefix(contentType, "video/") {
		return entities.MediaVideo
	}

	return entities.MediaImage
}
