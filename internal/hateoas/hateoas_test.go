package hateoas

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilderLinks(t *testing.T) {
	builder := NewBuilder("/v1/motorcycles")

	t.Run("EmitsSelfUpdateDelete", func(t *testing.T) {
		links := builder.Links("0198f1a2-aaaa-7bbb-8ccc-112233445566")

		expected := []Link{
			{Href: "/v1/motorcycles/0198f1a2-aaaa-7bbb-8ccc-112233445566", Rel: "self", Method: "GET"},
			{Href: "/v1/motorcycles/0198f1a2-aaaa-7bbb-8ccc-112233445566", Rel: "update", Method: "PUT"},
			{Href: "/v1/motorcycles/0198f1a2-aaaa-7bbb-8ccc-112233445566", Rel: "delete", Method: "DELETE"},
		}
		assert.Equal(t, expected, links)
	})

	t.Run("Deterministic", func(t *testing.T) {
		assert.Equal(t, builder.Links("abc"), builder.Links("abc"))
	})

	t.Run("CallsReturnIndependentSlices", func(t *testing.T) {
		first := builder.Links("abc")
		second := builder.Links("abc")

		first[0].Href = "mutated"
		assert.NotEqual(t, first[0].Href, second[0].Href)
	})

	t.Run("TrailingSlashIgnored", func(t *testing.T) {
		withSlash := NewBuilder("/v1/yards/")
		assert.Equal(t, "/v1/yards/id-1", withSlash.Links("id-1")[0].Href)
	})
}

func TestBuilderAttach(t *testing.T) {
	builder := NewBuilder("/v1/yards")

	t.Run("SetsLinksOnResource", func(t *testing.T) {
		var res Resource
		builder.Attach(&res, "id-1")

		assert.Len(t, res.Links, 3)
		assert.Equal(t, "/v1/yards/id-1", res.Links[0].Href)
	})

	t.Run("IdempotentAcrossEnvelopes", func(t *testing.T) {
		var first, second Resource
		builder.Attach(&first, "id-1")
		builder.Attach(&second, "id-1")

		assert.Equal(t, first.Links, second.Links)

		// Envelopes own their links exclusively.
		first.Links[1].Method = "PATCH"
		assert.Equal(t, "PUT", second.Links[1].Method)
	})
}
