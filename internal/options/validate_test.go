package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspath/oaserrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	t.Run("exactly one source", func(t *testing.T) {
		err := ValidateSingleInputSource("parser",
			InputSource{Name: "WithFilePath", Set: true},
			InputSource{Name: "WithBytes"},
		)
		assert.NoError(t, err)
	})

	t.Run("no source", func(t *testing.T) {
		err := ValidateSingleInputSource("parser",
			InputSource{Name: "WithFilePath"},
			InputSource{Name: "WithReader"},
			InputSource{Name: "WithBytes"},
		)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		assert.Contains(t, err.Error(), "parser: must specify an input source (use WithFilePath, WithReader, or WithBytes)")
	})

	t.Run("multiple sources", func(t *testing.T) {
		err := ValidateSingleInputSource("serializer",
			InputSource{Name: "WithFilePath", Set: true},
			InputSource{Name: "WithParsed", Set: true},
		)
		require.Error(t, err)

		var cfgErr *oaserrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "input source", cfgErr.Option)
		assert.Equal(t, []string{"WithFilePath", "WithParsed"}, cfgErr.Value)
		assert.Contains(t, err.Error(), "serializer: must specify exactly one input source")
	})
}

func TestJoinOr(t *testing.T) {
	assert.Equal(t, "", joinOr(nil))
	assert.Equal(t, "a", joinOr([]string{"a"}))
	assert.Equal(t, "a or b", joinOr([]string{"a", "b"}))
	assert.Equal(t, "a, b, or c", joinOr([]string{"a", "b", "c"}))
}
