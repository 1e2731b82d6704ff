package research

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublisherFromURL(t *testing.T) {
	assert.Equal(t, "Nosy Crow", PublisherFromURL("https://nosycrow.com/product/the-gruffalo/"))
	assert.Equal(t, "Flying Eye Books", PublisherFromURL("https://www.FlyingEyeBooks.com/shop/hilda"))
	assert.Equal(t, "", PublisherFromURL("https://example.com/some-book"))
}

func TestPublisherFromSnippet(t *testing.T) {
	assert.Equal(t, "Usborne", PublisherFromSnippet("A lift-the-flap book from Usborne for curious kids."))
	assert.Equal(t, "Walker Books", PublisherFromSnippet("Publisher: Walker Books. 32 pages."))
	assert.Equal(t, "", PublisherFromSnippet("A lovely story about a bear."))
}

func TestAuthorFromSnippet(t *testing.T) {
	assert.Equal(t, "Julia Donaldson", AuthorFromSnippet("A rhyming story by Julia Donaldson and Axel Scheffler."))
	assert.Equal(t, "Oliver Jeffers", AuthorFromSnippet("Author: Oliver Jeffers. Published 2017."))
	assert.Equal(t, "", AuthorFromSnippet("No byline in this snippet."))
}
