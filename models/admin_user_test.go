package models

import (
	"testing"

	"agenda-salao-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdminUser_HashesPassword(t *testing.T) {
	admin, err := NewAdminUser("admin@salao.com", "senha_forte_123")
	require.NoError(t, err)

	assert.Equal(t, "admin@salao.com", admin.Email)
	assert.NotEqual(t, "senha_forte_123", admin.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("senha_forte_123", admin.PasswordHash))
}
