package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, ParseTags("a, b"))
	assert.Equal(t, []string{"a", "b", "c"}, ParseTags("a,b,c"))
	assert.Equal(t, []string{"go"}, ParseTags("  go  "))
	assert.Empty(t, ParseTags(""))
	assert.Empty(t, ParseTags(" , , "))
}

func TestTagsRoundTripOnCanonicalForm(t *testing.T) {
	tags := []string{"react", "typescript", "vite"}
	assert.Equal(t, tags, ParseTags(JoinTags(tags)))

	canonical := "react, typescript, vite"
	assert.Equal(t, canonical, JoinTags(ParseTags(canonical)))
}
