// SPDX-License-Identifier: MIT
// Package core_test verifies the name <-> id registry.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/core"
)

// TestRegistry_Bijection checks that every registered name maps to exactly
// one id and back, and that unnamed slots never enter the name table.
func TestRegistry_Bijection(t *testing.T) {
	var r core.Registry

	a, created := r.Register("A")
	require.True(t, created)
	b, created := r.Register("B")
	require.True(t, created)
	anon, created := r.Register("")
	require.True(t, created)
	again, created := r.Register("A")
	require.False(t, created, "re-registering a name must not allocate")

	assert.Equal(t, core.VertexID(0), a)
	assert.Equal(t, core.VertexID(1), b)
	assert.Equal(t, core.VertexID(2), anon)
	assert.Equal(t, a, again)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 2, r.Named())

	for _, name := range []string{"A", "B"} {
		id, ok := r.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, name, r.Name(id))
	}
	assert.Equal(t, "", r.Name(anon))
}

func TestRegistry_LookupMisses(t *testing.T) {
	var r core.Registry
	r.Register("A")

	_, ok := r.Lookup("")
	assert.False(t, ok, "empty name never resolves")
	id, ok := r.Lookup("Z")
	assert.False(t, ok)
	assert.Equal(t, core.NoVertex, id)
	assert.Equal(t, "", r.Name(-1))
	assert.Equal(t, "", r.Name(42))
}
