package scripture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooks(t *testing.T) {
	assert.Equal(t, []string{"GENESIS", "PSALMS", "JOHN", "1 JOHN"}, Books(testCorpus))
	assert.Empty(t, Books("no headings here"))
}

func TestSuggest(t *testing.T) {
	books := Books(testCorpus)

	suggestions := Suggest("gnss", books, 3)
	assert.Equal(t, []string{"GENESIS"}, suggestions)

	suggestions = Suggest("jhn", books, 1)
	assert.Len(t, suggestions, 1)
	assert.Contains(t, []string{"JOHN", "1 JOHN"}, suggestions[0])

	assert.Empty(t, Suggest("", books, 3))
	assert.Empty(t, Suggest("john", nil, 3))
	assert.Empty(t, Suggest("john", books, 0))
	assert.Empty(t, Suggest("zzz", books, 3))
}
