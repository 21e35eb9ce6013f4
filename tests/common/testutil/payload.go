//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one field of a JSON payload before it is sent.
type Edit func(m map[string]any)

// Payload round-trips v through JSON so tests can send bodies the typed
// request structs cannot express.
func Payload(t *testing.T, v any, edits ...Edit) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, e := range edits {
		e(m)
	}
	return m
}

func Set(key string, value any) Edit {
	return func(m map[string]any) { m[key] = value }
}

func Drop(key string) Edit {
	return func(m map[string]any) { delete(m, key) }
}
