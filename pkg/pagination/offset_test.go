package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetRequest_Validate(t *testing.T) {
	tests := []struct {
		in     OffsetRequest
		page   int
		size   int
		offset int
	}{
		{OffsetRequest{}, 1, PageDefaultSize, 0},
		{OffsetRequest{Page: 3, Size: 10}, 3, 10, 20},
		{OffsetRequest{Page: -1, Size: 100_000}, 1, PageMaxSize, 0},
	}

	for _, tc := range tests {
		req := tc.in
		require.NoError(t, req.Validate())
		assert.Equal(t, tc.page, req.Page)
		assert.Equal(t, tc.size, req.Size)
		assert.Equal(t, tc.offset, req.Offset())
	}
}

func TestNewOffsetResult(t *testing.T) {
	r := NewOffsetResult([]string{"a", "b"}, 5, 2, 2)

	assert.True(t, r.HasMore)
	assert.Equal(t, int64(5), r.Total)

	assert.Equal(t, 3, r.Pages)

	last := NewOffsetResult([]string{"e"}, 5, 3, 2)
	assert.False(t, last.HasMore)
}

func TestNewOffsetResult_NilItems(t *testing.T) {
	r := NewOffsetResult[string](nil, 0, 1, 20)

	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
	assert.Equal(t, 0, r.Pages)
	assert.False(t, r.HasMore)
}
