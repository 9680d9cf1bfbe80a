package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertArguments(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		args, err := convertArguments(nil)
		require.NoError(t, err)
		require.Nil(t, args)
	})

	t.Run("raw json", func(t *testing.T) {
		args, err := convertArguments(json.RawMessage(`{"question": "is it signed?"}`))
		require.NoError(t, err)
		require.Equal(t, map[string]any{"question": "is it signed?"}, args)
	})

	t.Run("empty raw json", func(t *testing.T) {
		args, err := convertArguments(json.RawMessage(nil))
		require.NoError(t, err)
		require.Nil(t, args)
	})

	t.Run("malformed raw json", func(t *testing.T) {
		_, err := convertArguments(json.RawMessage(`{"question": `))
		require.Error(t, err)
	})

	t.Run("decoded map", func(t *testing.T) {
		args, err := convertArguments(map[string]any{"paths": []any{"a.pdf"}})
		require.NoError(t, err)
		require.Equal(t, map[string]any{"paths": []any{"a.pdf"}}, args)
	})

	t.Run("unexpected type", func(t *testing.T) {
		_, err := convertArguments(42)
		require.Error(t, err)
	})
}
