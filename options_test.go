package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultEqualPrimitives(t *testing.T) {
	assert.True(t, defaultEqual(1, 1))
	assert.False(t, defaultEqual(1, 2))
	assert.True(t, defaultEqual("a", "a"))
}

func TestDefaultEqualNonComparableAlwaysDiffers(t *testing.T) {
	a := []int{1, 2, 3}
	b := []int{1, 2, 3}
	assert.False(t, defaultEqual(a, b), "slices aren't comparable with ==, so the conservative answer is always different")
}

func TestDeepEqualStructural(t *testing.T) {
	eq := DeepEqual[[]int]()
	assert.True(t, eq([]int{1, 2, 3}, []int{1, 2, 3}))
	assert.False(t, eq([]int{1, 2, 3}, []int{1, 2, 4}))
}

func TestDeepEqualWiredIntoDerived(t *testing.T) {
	a := NewInput([]int{1, 2}, Options[[]int]{Equal: DeepEqual[[]int]()})
	var calls int
	d := Read(a, func(xs []int) int {
		calls++
		sum := 0
		for _, x := range xs {
			sum += x
		}
		return sum
	})

	assert.Equal(t, 3, d.Get())
	assert.Equal(t, 1, calls)

	a.Set([]int{1, 2}) // structurally equal: must not dirty d
	assert.Equal(t, 3, d.Get())
	assert.Equal(t, 1, calls)

	a.Set([]int{3, 4})
	assert.Equal(t, 7, d.Get())
	assert.Equal(t, 2, calls)
}
