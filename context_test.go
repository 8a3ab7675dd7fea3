package cookiekit_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiekit"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	manager := cookiekit.NewManager(nil)
	ctx := cookiekit.WithManager(context.Background(), manager)

	got, ok := cookiekit.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, manager, got)

	_, ok = cookiekit.FromContext(context.Background())
	assert.False(t, ok)
}

func TestMustFromContext(t *testing.T) {
	t.Parallel()

	manager := cookiekit.NewManager(nil)
	ctx := cookiekit.WithManager(context.Background(), manager)
	assert.Same(t, manager, cookiekit.MustFromContext(ctx))

	assert.PanicsWithError(t, cookiekit.ErrNotInitialized.Error(), func() {
		cookiekit.MustFromContext(context.Background())
	})
}
