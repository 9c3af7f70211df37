package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspath/oaserrors"
)

func TestHandleFormat(t *testing.T) {
	t.Run("email", func(t *testing.T) {
		out := captureStdout(t)
		require.NoError(t, HandleFormat([]string{"email", "jane@example.com"}))
		assert.Equal(t, "jane@example.com\n", out.String())
	})

	t.Run("list", func(t *testing.T) {
		out := captureStdout(t)
		require.NoError(t, HandleFormat([]string{"-list"}))
		assert.Equal(t, "date\ndate-time\nemail\nuuid\n", out.String())
	})

	t.Run("invalid value", func(t *testing.T) {
		captureStdout(t)
		err := HandleFormat([]string{"-name", "owner", "email", "jane"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrWrongDataType))
		assert.Contains(t, err.Error(), `owner: expected string:email, got "jane"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		captureStdout(t)
		err := HandleFormat([]string{"phone", "555"})
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})

	t.Run("missing args", func(t *testing.T) {
		captureStdout(t)
		assert.Error(t, HandleFormat([]string{"email"}))
		assert.NoError(t, HandleFormat([]string{"--help"}))
	})
}
