package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_RunsCallbacksInSubscriptionOrder(t *testing.T) {
	e := NewEmitter()

	var order []string
	e.Hook("build:start", func(ctx context.Context, args ...any) error {
		order = append(order, "first")
		return nil
	})
	e.Hook("build:start", func(ctx context.Context, args ...any) error {
		order = append(order, "second")
		return nil
	})

	require.NoError(t, e.Emit(context.Background(), "build:start"))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestEmit_PassesArgsThrough(t *testing.T) {
	e := NewEmitter()

	var got []any
	e.Hook("build:start", func(ctx context.Context, args ...any) error {
		got = args
		return nil
	})

	require.NoError(t, e.Emit(context.Background(), "build:start", "payload", 7))
	assert.Equal(t, []any{"payload", 7}, got)
}

func TestEmit_FirstErrorAborts(t *testing.T) {
	e := NewEmitter()
	boom := errors.New("boom")

	e.Hook("build:start", func(ctx context.Context, args ...any) error {
		return boom
	})
	reached := false
	e.Hook("build:start", func(ctx context.Context, args ...any) error {
		reached = true
		return nil
	})

	err := e.Emit(context.Background(), "build:start")
	require.ErrorIs(t, err, boom)
	assert.False(t, reached)
}

func TestEmit_UnknownNameIsNoOp(t *testing.T) {
	e := NewEmitter()
	require.NoError(t, e.Emit(context.Background(), "never:subscribed"))
}

func TestHook_NilCallbackPanics(t *testing.T) {
	e := NewEmitter()
	require.Panics(t, func() { e.Hook("build:start", nil) })
}
