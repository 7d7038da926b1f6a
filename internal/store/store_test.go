package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSaveAndGet(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)

	run := NewRun()
	run.SegmentsIn = 3
	run.Status = "ok"
	s.Save(run)

	got, err := s.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.SegmentsIn)
	assert.Equal(t, "ok", got.Status)
}

func TestStoreListOrdersNewestFirst(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)

	first := NewRun()
	s.Save(first)
	second := NewRun()
	s.Save(second)

	runs, err := s.List(10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
}
