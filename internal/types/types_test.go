package types

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	t.Parallel()

	for _, c := range Categories() {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("image")
	require.NoError(t, err)
	assert.Equal(t, Image, got)

	_, err = ParseCategory("video")
	assert.Error(t, err)
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	tests := map[string]SortKey{
		"":         SortModifiedDate,
		"date":     SortModifiedDate,
		"Modified": SortModifiedDate,
		"name":     SortName,
		"SIZE":     SortSize,
		"type":     SortCategory,
		"category": SortCategory,
	}
	for in, want := range tests {
		got, err := ParseSortKey(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseSortKey("color")
	assert.Error(t, err)
}

func TestDefaultDiscoveryOptions(t *testing.T) {
	t.Parallel()

	opts := DefaultDiscoveryOptions()
	assert.False(t, opts.ShowHidden)
	assert.Nil(t, opts.Categories)
	assert.Nil(t, opts.MinSize)
	assert.Nil(t, opts.MaxSize)
	assert.Empty(t, opts.Pattern)
	assert.Equal(t, SortModifiedDate, opts.SortKey)
	assert.False(t, opts.Reverse)
}

func TestFilesystemErrorUnwraps(t *testing.T) {
	t.Parallel()

	err := error(&FilesystemError{Op: "stat", Path: "/missing", Err: os.ErrNotExist})
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "/missing")
}

func TestErrMsgUnwraps(t *testing.T) {
	t.Parallel()

	inner := &FilesystemError{Op: "stat", Path: "/missing", Err: os.ErrNotExist}
	err := error(ErrMsg{Err: inner})

	var fsErr *FilesystemError
	require.ErrorAs(t, err, &fsErr)
	assert.Same(t, inner, fsErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecisionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Keep", Keep.String())
	assert.Equal(t, "Trash", Trash.String())
}
