package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeSlotsOverlap(t *testing.T) {
	got := MergeSlots([]string{"09:00-11:00", "10:00-12:00"})
	assert.Equal(t, []string{"09:00-12:00"}, got)
}

func TestMergeSlotsTouching(t *testing.T) {
	// Ranges that meet exactly merge into one block.
	got := MergeSlots([]string{"09:00-10:00", "10:00-11:00"})
	assert.Equal(t, []string{"09:00-11:00"}, got)
}

func TestMergeSlotsDisjoint(t *testing.T) {
	got := MergeSlots([]string{"14:00-15:00", "09:00-10:00"})
	assert.Equal(t, []string{"09:00-10:00", "14:00-15:00"}, got)
}

func TestMergeSlotsContained(t *testing.T) {
	got := MergeSlots([]string{"09:00-12:00", "10:00-11:00"})
	assert.Equal(t, []string{"09:00-12:00"}, got)
}

func TestMergeSlotsChain(t *testing.T) {
	got := MergeSlots([]string{"11:00-12:00", "09:00-10:30", "10:00-11:00", "15:00-16:00"})
	assert.Equal(t, []string{"09:00-12:00", "15:00-16:00"}, got)
}

func TestMergeSlotsEmptyAndSingle(t *testing.T) {
	assert.Equal(t, []string{}, MergeSlots(nil))
	assert.Equal(t, []string{}, MergeSlots([]string{}))
	assert.Equal(t, []string{"09:00-10:00"}, MergeSlots([]string{"09:00-10:00"}))
}

func TestMergeSlotsDropsUnparseable(t *testing.T) {
	got := MergeSlots([]string{"09:00-10:00", "garbage", "10:00-11:00"})
	assert.Equal(t, []string{"09:00-11:00"}, got)
}

func TestMergeSlotsIdempotent(t *testing.T) {
	in := []string{"20:00-21:00", "09:00-10:00", "09:30-11:00"}
	once := MergeSlots(in)
	twice := MergeSlots(once)
	assert.Equal(t, once, twice)
}

func TestMergeSlotsOrderIndependent(t *testing.T) {
	slots := []string{"09:00-10:00", "09:30-11:00", "14:00-15:00", "15:00-16:30"}
	want := MergeSlots(slots)

	permute(slots, func(p []string) {
		assert.Equal(t, want, MergeSlots(p))
	})
}

func TestMergeSlotsInputUnmodified(t *testing.T) {
	in := []string{"10:00-11:00", "09:00-10:30"}
	MergeSlots(in)
	assert.Equal(t, []string{"10:00-11:00", "09:00-10:30"}, in)
}

func TestMergeSlotsPreservesCoverage(t *testing.T) {
	in := []string{"09:00-10:00", "09:30-11:00", "13:00-14:00", "13:30-13:45"}
	out := MergeSlots(in)

	require.LessOrEqual(t, len(out), len(in))

	// Every minute covered by the input is covered by the output and
	// vice versa.
	covered := func(slots []string) map[int]bool {
		m := map[int]bool{}
		for _, s := range slots {
			r, err := ParseRange(s)
			require.NoError(t, err)
			for i := r.Start; i < r.End; i++ {
				m[i] = true
			}
		}
		return m
	}
	assert.Equal(t, covered(in), covered(out))
}

// permute calls fn with every permutation of items.
func permute(items []string, fn func([]string)) {
	var rec func(k int)
	work := append([]string{}, items...)
	rec = func(k int) {
		if k == len(work) {
			fn(append([]string{}, work...))
			return
		}
		for i := k; i < len(work); i++ {
			work[k], work[i] = work[i], work[k]
			rec(k + 1)
			work[k], work[i] = work[i], work[k]
		}
	}
	rec(0)
}
