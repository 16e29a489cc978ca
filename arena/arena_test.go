package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	id   uint64
	name [40]byte
}

func TestAppendGet(t *testing.T) {
	a := New[int]()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 8, a.ItemSize())

	for i := range 10 {
		idx, err := a.Append(i * 3)
		require.NoError(t, err)
		assert.Equal(t, Index(i), idx)
	}

	p, ok := a.Get(4)
	require.True(t, ok)
	assert.Equal(t, 12, *p)

	_, ok = a.Get(10)
	assert.False(t, ok, "index past used must be absent")
	assert.Equal(t, 0, a.At(10))
}

func TestGrowthPreservesItems(t *testing.T) {
	a := New[record](WithBlockSize(1024))
	require.Equal(t, 0, a.Cap())

	for i := range 5000 {
		_, err := a.Append(record{id: uint64(i)})
		require.NoError(t, err)
	}
	require.GreaterOrEqual(t, a.Cap(), 5000)

	for i := range a.Len() {
		assert.Equal(t, uint64(i), a.At(Index(i)).id)
	}
}

func TestGrowthIsBlockAligned(t *testing.T) {
	a := New[uint64]()
	_, err := a.Append(1)
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockSize/8, a.Cap())

	for a.Len() < a.Cap() {
		_, err = a.Append(2)
		require.NoError(t, err)
	}
	_, err = a.Append(3)
	require.NoError(t, err)
	assert.Equal(t, 2*DefaultBlockSize/8, a.Cap())
}

func TestPointerInvalidatedByGrowth(t *testing.T) {
	a := New[uint64](WithBlockSize(64))
	idx, err := a.Append(7)
	require.NoError(t, err)

	stale, _ := a.Get(idx)
	before := a.Cap()
	for a.Cap() == before {
		_, err = a.Append(0)
		require.NoError(t, err)
	}
	*stale = 99

	// writes through a pointer taken before growth do not reach the arena
	assert.Equal(t, uint64(7), a.At(idx))

	require.True(t, a.Set(idx, 42))
	assert.Equal(t, uint64(42), a.At(idx))
}

func TestSetOutOfRange(t *testing.T) {
	a := New[string]()
	assert.False(t, a.Set(0, "x"))
	assert.Equal(t, 0, a.Len())
}

func TestMaxItems(t *testing.T) {
	a := New[int](WithMaxItems(3))
	for i := range 3 {
		_, err := a.Append(i)
		require.NoError(t, err)
	}
	_, err := a.Append(3)
	assert.ErrorIs(t, err, ErrCapacityExhausted)
	assert.Equal(t, 3, a.Len())
}

func TestZeroWidthItems(t *testing.T) {
	a := New[struct{}]()
	for range 100 {
		_, err := a.AppendZero()
		require.NoError(t, err)
	}
	assert.Equal(t, 100, a.Len())
}

func TestAllAndReset(t *testing.T) {
	a := New[string]()
	for _, s := range []string{"a", "b", "c"} {
		_, err := a.Append(s)
		require.NoError(t, err)
	}

	var got []string
	for i, s := range a.All {
		assert.Equal(t, a.At(i), *s)
		got = append(got, *s)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)

	got = got[:0]
	for _, s := range a.All {
		got = append(got, *s)
		break
	}
	assert.Len(t, got, 1)

	a.Reset()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	a := New[int](WithBlockSize(1000), WithGrowthFactor(1), WithMaxItems(-1), nil)
	assert.Equal(t, DefaultBlockSize, a.cfg.blockSize)
	assert.Equal(t, uint(DefaultGrowthFactor), a.cfg.growthFactor)
	assert.Equal(t, MaxItems, a.cfg.maxItems)
}

func TestClearKeepsStorage(t *testing.T) {
	a := New[int](WithMaxItems(2))
	_, _ = a.Append(1)
	_, _ = a.Append(2)
	assert.True(t, a.Full())

	c := a.Cap()
	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, c, a.Cap())
	assert.False(t, a.Full())
}
