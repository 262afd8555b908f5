package utils

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRuneIndexToByteOffset(t *testing.T) {
	line := []byte("héllo")
	require.Equal(t, 0, RuneIndexToByteOffset(line, 0))
	require.Equal(t, 1, RuneIndexToByteOffset(line, 1))
	require.Equal(t, 3, RuneIndexToByteOffset(line, 2), "é is two bytes")
	require.Equal(t, 6, RuneIndexToByteOffset(line, 5))
	require.Equal(t, len(line), RuneIndexToByteOffset(line, 99), "clamps past the end")
	require.Equal(t, 0, RuneIndexToByteOffset(line, -1))
}

func TestByteOffsetToRuneIndex(t *testing.T) {
	line := []byte("héllo")
	require.Equal(t, 0, ByteOffsetToRuneIndex(line, 0))
	require.Equal(t, 1, ByteOffsetToRuneIndex(line, 1))
	require.Equal(t, 2, ByteOffsetToRuneIndex(line, 3))
	require.Equal(t, 5, ByteOffsetToRuneIndex(line, 6))
	require.Equal(t, 5, ByteOffsetToRuneIndex(line, 99))
	require.Equal(t, 1, ByteOffsetToRuneIndex(line, 2), "offset inside a rune rounds down")
}

func TestOffsetConversionRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		line := []byte(rapid.StringMatching(`[\p{L}\p{N} <>/="-]{0,40}`).Draw(rt, "line"))
		runeCount := ByteOffsetToRuneIndex(line, len(line))
		idx := rapid.IntRange(0, runeCount).Draw(rt, "idx")

		offset := RuneIndexToByteOffset(line, idx)
		if got := ByteOffsetToRuneIndex(line, offset); got != idx {
			rt.Fatalf("round trip: rune %d -> byte %d -> rune %d", idx, offset, got)
		}
	})
}

func TestDebouncer_CoalescesCalls(t *testing.T) {
	var d Debouncer
	var calls atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)

	for i := 0; i < 5; i++ {
		d.Debounce(20*time.Millisecond, func() {
			calls.Add(1)
			wg.Done()
		})
	}

	wg.Wait()
	// Give a stray timer a chance to misfire before asserting.
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())
}
