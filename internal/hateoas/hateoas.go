// Package hateoas builds the navigational links attached to every resource
// representation. Links are immutable value types computed from the entity's
// canonical collection path and the record identifier; link presence never
// depends on the caller's authorization state.
package hateoas

import (
	"fmt"
	"strings"
)

// Link relation names emitted for every resource.
const (
	RelSelf   = "self"
	RelUpdate = "update"
	RelDelete = "delete"
)

// Link is a machine-readable pointer telling a client what it can do next
// with a resource.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// Resource is embedded by response DTOs to carry hypermedia links.
type Resource struct {
	Links []Link `json:"links"`
}

// SetLinks replaces the resource's link list.
func (r *Resource) SetLinks(links []Link) {
	r.Links = links
}

// Builder computes the link set for one entity type. A Builder is constructed
// once per entity with its canonical collection path (e.g. "/v1/motorcycles")
// and is safe for concurrent use.
type Builder struct {
	basePath string
}

// NewBuilder creates a Builder for the entity served at basePath.
// A trailing slash on basePath is ignored.
func NewBuilder(basePath string) *Builder {
	return &Builder{basePath: strings.TrimRight(basePath, "/")}
}

// Links returns the self/update/delete link set for the record identified by
// id. For a fixed id the result is always byte-identical, and each call
// returns a fresh slice so envelopes never share link lists.
func (b Builder) Links(id string) []Link {
	href := fmt.Sprintf("%s/%s", b.basePath, id)

	return []Link{
		{Href: href, Rel: RelSelf, Method: "GET"},
		{Href: href, Rel: RelUpdate, Method: "PUT"},
		{Href: href, Rel: RelDelete, Method: "DELETE"},
	}
}

// Attach sets the link list on a resource envelope for the given id.
func (b Builder) Attach(r *Resource, id string) {
	r.SetLinks(b.Links(id))
}
