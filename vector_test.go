package bitvec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/bitvec/testutil"
)

func TestVectorPushPop(t *testing.T) {
	v := New()

	// 9 pushed bits: 1,0,1,1,0,0,0,0,1
	for _, b := range []bool{true, false, true, true, false, false, false, false, true} {
		v.Push(b)
	}

	require.Equal(t, 9, v.Len())
	require.Len(t, v.Words(), 1)

	// Bits at indices 2..5 are 1,1,0,0; LSB-first that reads 0b0011.
	assert.Equal(t, uint64(0b0011), v.GetBits(2, 6))

	b, ok := v.Pop()
	require.True(t, ok)
	assert.True(t, b)
	assert.Equal(t, 8, v.Len())

	// Popping an empty vector reports absence.
	v.Truncate(0)
	_, ok = v.Pop()
	assert.False(t, ok)
}

func TestVectorPushPopWordBoundary(t *testing.T) {
	v := New()

	// 64 zeros, then a one: the 65th bit must land in a second word.
	for i := 0; i < 64; i++ {
		v.Push(false)
	}
	v.Push(true)

	require.Equal(t, 65, v.Len())
	ws := v.Words()
	require.Len(t, ws, 2)
	assert.Equal(t, uint64(0), ws[0])
	assert.Equal(t, uint64(1), ws[1])
	assert.True(t, v.Get(64))
	assert.Equal(t, uint64(0b10), v.GetBits(63, 65))

	b, ok := v.Pop()
	require.True(t, ok)
	assert.True(t, b)
	assert.Equal(t, 64, v.Len())
	require.Len(t, v.Words(), 1)

	// The popped bit's word is back in padding and must read zero.
	v.Push(false)
	assert.False(t, v.Get(64))
}

func TestVectorSetGet(t *testing.T) {
	v := New()
	v.Resize(200, false)

	v.Set(77, true)
	assert.True(t, v.Get(77))
	for i := 0; i < 200; i++ {
		if i == 77 {
			continue
		}
		assert.False(t, v.Get(i), "bit %d must be untouched", i)
	}

	v.Set(77, false)
	assert.False(t, v.Get(77))
}

func TestVectorGetSetBits(t *testing.T) {
	v := New()
	v.Resize(256, false)

	tests := []struct {
		name       string
		start, end int
		value      uint64
	}{
		{"WithinWord", 3, 11, 0b1011_0010},
		{"WordBoundary", 60, 72, 0xabc},
		{"FullWord", 64, 128, 0xdeadbeefcafebabe},
		{"SingleBit", 255, 256, 1},
		{"Empty", 40, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v.SetBits(tt.start, tt.end, tt.value)
			assert.Equal(t, tt.value, v.GetBits(tt.start, tt.end))
		})
	}

	// Bits above the range width are ignored on write.
	fresh := New()
	fresh.Resize(8, false)
	fresh.SetBits(0, 4, 0xff)
	assert.Equal(t, uint64(0b1111), fresh.GetBits(0, 4))
	assert.False(t, fresh.Get(4))
}

func TestVectorTruncateAndReextend(t *testing.T) {
	rng := testutil.NewRNG(42)
	bs := rng.Bools(150)

	v := FromBools(bs)
	orig := v.Clone()

	suffix := v.Slice(100, 150)
	removed := FromBools(nil)
	removed.Extend(suffix)

	v.Truncate(100)
	require.Equal(t, 100, v.Len())

	v.Extend(removed)
	assert.True(t, v.Equal(orig), "truncate followed by re-extend must reproduce the vector")
}

func TestVectorPaddingInvariant(t *testing.T) {
	v := New()
	v.Resize(130, true)
	v.Truncate(70)

	ws := v.Words()
	require.Len(t, ws, 2)
	assert.Equal(t, uint64(0), ws[1]>>6, "bits beyond len must read zero")

	// A vector built the long way must equal one built directly,
	// regardless of the garbage once present in the padding.
	o := New()
	o.Resize(70, true)
	assert.True(t, v.Equal(o))
}

func TestVectorGrowthBound(t *testing.T) {
	const n = 100000

	v := New()
	reallocs := 0
	prev := v.Cap()

	for i := 0; i < n; i++ {
		v.Push(i%3 == 0)
		if c := v.Cap(); c != prev {
			reallocs++
			prev = c
		}
	}

	require.Equal(t, n, v.Len())
	assert.LessOrEqual(t, reallocs, 16, "capacity doubling keeps reallocations logarithmic")

	for i := 0; i < n; i++ {
		require.Equal(t, i%3 == 0, v.Get(i), "bit %d", i)
	}
}

func TestVectorResize(t *testing.T) {
	v := New()

	v.Resize(10, true)
	assert.Equal(t, 10, v.Len())
	assert.Equal(t, 10, v.Count())

	v.Resize(100, false)
	assert.Equal(t, 100, v.Len())
	assert.Equal(t, 10, v.Count())

	v.Resize(5, false)
	assert.Equal(t, 5, v.Len())
	assert.Equal(t, 5, v.Count())
}

func TestVectorFill(t *testing.T) {
	v := New()
	v.Resize(70, false)

	v.Fill(true)
	assert.Equal(t, 70, v.Count())
	assert.Equal(t, uint64(0), v.Words()[1]>>6, "fill must not leak into padding")

	v.Fill(false)
	assert.Equal(t, 0, v.Count())
}

func TestVectorBits(t *testing.T) {
	rng := testutil.NewRNG(7)
	bs := rng.Bools(99)
	v := FromBools(bs)

	var got []bool
	for b := range v.Bits() {
		got = append(got, b)
	}
	assert.Equal(t, bs, got)

	// Each call yields a fresh traversal; early break must not
	// disturb a later one.
	for range v.Bits() {
		break
	}
	count := 0
	for range v.Bits() {
		count++
	}
	assert.Equal(t, 99, count)
}

func TestVectorCloneEqual(t *testing.T) {
	rng := testutil.NewRNG(3)
	v := FromBools(rng.Bools(77))

	c := v.Clone()
	require.True(t, v.Equal(c))

	c.Set(10, !c.Get(10))
	assert.False(t, v.Equal(c))

	// Different lengths never compare equal, even on a shared prefix.
	d := v.Clone()
	d.Push(false)
	assert.False(t, v.Equal(d))
}

func TestVectorAlignAndPushWord(t *testing.T) {
	v := New()
	v.Push(true)
	v.Push(true)

	v.Align(false)
	require.Equal(t, 64, v.Len())
	assert.Equal(t, 2, v.Count())

	v.PushWord(0xffff)
	assert.Equal(t, 128, v.Len())
	assert.Equal(t, uint64(0xffff), v.GetBits(64, 128))

	// PushWord on an unaligned vector pads with zeros first.
	v.Push(true)
	v.PushWord(1)
	assert.Equal(t, 256, v.Len())
	assert.True(t, v.Get(192))
}

func TestVectorFromWords(t *testing.T) {
	v := FromWords([]uint64{^uint64(0), ^uint64(0)}, 70)
	assert.Equal(t, 70, v.Len())
	assert.Equal(t, 70, v.Count(), "FromWords must clear padding")

	assert.Panics(t, func() { FromWords([]uint64{0}, 65) })
}

func TestVectorString(t *testing.T) {
	v := FromBools([]bool{true, false, true, true})
	assert.Equal(t, "1011", v.String())
	assert.Equal(t, "", New().String())
}

func TestVectorCapacity(t *testing.T) {
	v, err := WithCapacity(1000)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 1000)

	before := v.Cap()
	for i := 0; i < 1000; i++ {
		v.Push(true)
	}
	assert.Equal(t, before, v.Cap(), "pushes within capacity must not reallocate")

	_, err = WithCapacity(-1)
	var overflow *ErrCapacityOverflow
	require.ErrorAs(t, err, &overflow)

	require.NoError(t, v.Reserve(5000))
	assert.GreaterOrEqual(t, v.Cap(), 5000)
	assert.Error(t, v.Reserve(-1))
}

func TestVectorBoundsPanics(t *testing.T) {
	v := New()
	v.Resize(100, false)

	assert.PanicsWithError(t, (&ErrIndexOutOfBounds{Index: 100, Len: 100}).Error(), func() { v.Get(100) })
	assert.Panics(t, func() { v.Get(-1) })
	assert.Panics(t, func() { v.Set(100, true) })
	assert.Panics(t, func() { v.GetBits(90, 101) })
	assert.Panics(t, func() { v.GetBits(50, 40) })
	assert.PanicsWithError(t, (&ErrRangeTooWide{Start: 0, End: 65}).Error(), func() { v.GetBits(0, 65) })
	assert.Panics(t, func() { v.SetBits(0, 65, 0) })
	assert.Panics(t, func() { v.Truncate(-1) })
	assert.Panics(t, func() { v.Resize(-1, false) })
}

func TestVectorConcurrentReaders(t *testing.T) {
	rng := testutil.NewRNG(11)
	bs := rng.Bools(4096)
	v := FromBools(bs)

	g := new(errgroup.Group)
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i, want := range bs {
				if v.Get(i) != want {
					return fmt.Errorf("bit %d: got %v, want %v", i, v.Get(i), want)
				}
			}
			if v.Count() != FromBools(bs).Count() {
				return fmt.Errorf("count mismatch")
			}
			return nil
		})
	}

	require.NoError(t, g.Wait())
}

func BenchmarkVectorPush(b *testing.B) {
	v := New()
	for i := 0; i < b.N; i++ {
		v.Push(i&1 == 0)
	}
}

func BenchmarkVectorGetBits(b *testing.B) {
	v := New()
	v.Resize(1<<16, true)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.GetBits(i%60000, i%60000+60)
	}
}
