package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "completed", "cancelled"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
		assert.True(t, got.Valid())
	}

	_, err := ParseStatus("shipped")
	require.Error(t, err)
	assert.False(t, Status("shipped").Valid())
}
