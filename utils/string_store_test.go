package utils

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringStoreInternsLowercase(t *testing.T) {
	store := newStringStore()

	screen := store.GetPointer("Screen")
	require.Equal(t, "screen", *screen)
	require.True(t, screen == store.GetPointer("SCREEN"))
	require.True(t, screen == store.GetPointer("screen"))
	require.False(t, screen == store.GetPointer("screens"))

	ptrs := store.GetPointers([]string{"Touch", "SCREEN"})
	require.Equal(t, "touch", *ptrs[0])
	require.True(t, ptrs[1] == screen)
}

func TestStringStoreLock(t *testing.T) {
	store := newStringStore()
	battery := store.GetPointer("battery")
	store.Lock()

	require.True(t, battery == store.GetPointer("Battery"))

	first := store.GetPointer("Keyboard")
	second := store.GetPointer("keyboard")
	require.Equal(t, "keyboard", *first)
	require.Equal(t, *first, *second)
	require.False(t, first == second)

	_, stored := store.words.Load("keyboard")
	require.False(t, stored)
}

func TestRecoverWithError(t *testing.T) {
	run := func(f func()) (err error) {
		defer RecoverWithError(&err)
		f()
		return nil
	}

	require.NoError(t, run(func() {}))

	err := run(func() { panic("index out of range") })
	require.True(t, errors.Is(err, ErrPanic))
	require.Contains(t, err.Error(), "index out of range")

	err = run(func() { panic(fs.ErrNotExist) })
	require.True(t, errors.Is(err, ErrPanic))
	require.True(t, errors.Is(err, fs.ErrNotExist))
}
