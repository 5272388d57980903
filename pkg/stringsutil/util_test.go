package stringsutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"a", "", "  ", " b "}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", " "}))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Новость", Truncate("Новость", 7))
	assert.Equal(t, "Нов…", Truncate("Новость", 4))
	assert.Equal(t, "…", Truncate("Новость", 1))
	assert.Equal(t, "", Truncate("Новость", 0))
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "a b c", SingleLine(" a\n\tb  c "))
}
