package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	encoded, err := HashPassword("brazil")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$"))
	require.NotContains(t, encoded, "brazil")

	again, err := HashPassword("brazil")
	require.NoError(t, err)
	require.NotEqual(t, encoded, again, "salts must differ")
}

func TestCheckPassword(t *testing.T) {
	encoded, err := HashPassword("brazil")
	require.NoError(t, err)

	require.True(t, CheckPassword(encoded, "brazil"))
	require.False(t, CheckPassword(encoded, "argentina"))
	require.False(t, CheckPassword("not-a-hash", "brazil"))
	require.False(t, CheckPassword("$argon2id$v=19$m=65536,t=1,p=4$bogus$bogus!", "brazil"))
}
