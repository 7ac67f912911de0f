package malloc

import "testing"

import s "github.com/prataprc/gosettings"
import "github.com/stretchr/testify/require"

func TestBootheap(t *testing.T) {
	ram := make([]byte, 1024*1024)
	setts := Defaultsettings().Mixin(s.Settings{"reserved": int64(64 * 1024)})

	h, err := Bootheap(ram, 4096, setts)
	require.NoError(t, err)
	start, end := h.Bounds()
	require.Equal(t, int64(4096), start)
	require.Equal(t, int64(1024*1024-64*1024), end)
	require.Equal(t, end-start, h.Available())

	// reserved tail swallows the whole RAM.
	_, err = Bootheap(ram, 4096, Defaultsettings())
	require.Equal(t, ErrorDegenerateheap, err)
}

func TestGlobalheap(t *testing.T) {
	ram := make([]byte, 1024*1024)
	setts := Defaultsettings().Mixin(s.Settings{"reserved": int64(64 * 1024)})
	h, err := Bootheap(ram, 0, setts)
	require.NoError(t, err)
	require.Equal(t, h, Setglobal(h))
	require.Equal(t, h, Globalheap())

	ptr, ok := Malloc(100)
	require.True(t, ok)
	require.Equal(t, int64(112), h.Allocated())

	ptr, ok = Reallocptr(ptr, 500)
	require.True(t, ok)
	require.Equal(t, int64(512), h.Allocated())

	aptr, ok := Mallocaligned(100, 256)
	require.True(t, ok)
	require.Equal(t, int64(0), aptr%256)

	Freeptr(ptr)
	Freeptr(aptr)
	require.Equal(t, int64(0), h.Allocated())
	require.Equal(t, h.Available(), heapcapacity(h))
	h.Validate()
}

func heapcapacity(h *Heap) int64 {
	start, end := h.Bounds()
	return end - start
}

func TestGlobalunregistered(t *testing.T) {
	Setglobal(nil)
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic without a registered heap")
		}
	}()
	Malloc(10)
}
