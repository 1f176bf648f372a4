package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserID(t *testing.T) {
	id := NewUserID()

	assert.True(t, strings.HasPrefix(id, "user_"))

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.NotEmpty(t, parts[1])
	assert.NotEmpty(t, parts[2])

	// The fingerprint component is stable on the same host.
	again := NewUserID()
	assert.Equal(t, parts[1], strings.Split(again, "_")[1])
}
