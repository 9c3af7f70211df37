package formatter

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oaspath/oaserrors"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"date", "date-time", "email", "uuid"}, r.Tags())

	for _, tag := range []string{"email", "EMAIL", " Email ", "Date-Time", "UUID"} {
		t.Run(tag, func(t *testing.T) {
			_, ok := r.Lookup(tag)
			assert.True(t, ok)
		})
	}

	_, ok := r.Lookup("int32")
	assert.False(t, ok)
}

func TestRegistryFormat(t *testing.T) {
	r := Default()
	ctx := Context{Name: "owner", Path: "/pets"}

	t.Run("delegates to formatter", func(t *testing.T) {
		got, err := r.Format("email", "a@example.com", ctx)
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", got)
	})

	t.Run("formatter error passes through", func(t *testing.T) {
		_, err := r.Format("email", "nope", ctx)
		assert.True(t, errors.Is(err, oaserrors.ErrWrongDataType))
	})

	t.Run("unknown tag is a config error", func(t *testing.T) {
		_, err := r.Format("phone", "555", ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))

		var cfgErr *oaserrors.ConfigError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, "format", cfgErr.Option)
		assert.Equal(t, "phone", cfgErr.Value)
		assert.Contains(t, cfgErr.Message, "date, date-time, email, uuid")
	})
}

func TestRegistryWith(t *testing.T) {
	base := Default()
	upper := FormatterFunc(func(value any, _ Context) (string, error) {
		s, _ := value.(string)
		return s + "!", nil
	})

	extended := base.With("Shout", upper)
	got, err := extended.Format("shout", "hi", Context{})
	require.NoError(t, err)
	assert.Equal(t, "hi!", got)

	// the original registry is unchanged
	_, ok := base.Lookup("shout")
	assert.False(t, ok)
	assert.Len(t, extended.Tags(), len(base.Tags())+1)

	// replacing a built-in
	replaced := base.With("email", upper)
	got, err = replaced.Format("email", "x", Context{})
	require.NoError(t, err)
	assert.Equal(t, "x!", got)
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry(map[string]Formatter{
		"ignored": nil,
		"Date":    Date,
	})
	assert.Equal(t, []string{"date"}, r.Tags())

	empty := NewRegistry(nil)
	assert.Empty(t, empty.Tags())
}

func TestNilRegistry(t *testing.T) {
	var r *Registry
	_, ok := r.Lookup("email")
	assert.False(t, ok)
	assert.Nil(t, r.Tags())

	_, err := r.Format("email", "a@example.com", Context{})
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := Default()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, _ = r.Format("Email", "a@example.com", Context{})
				_, _ = r.Lookup("DATE-TIME")
			}
		}()
	}
	wg.Wait()
}
