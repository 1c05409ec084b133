package trivia

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginateWindowLengths(t *testing.T) {
	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	assert.Len(t, Paginate(1, 10, items), 10)
	assert.Len(t, Paginate(2, 10, items), 10)
	assert.Len(t, Paginate(3, 10, items), 3)
	assert.Empty(t, Paginate(4, 10, items))
	assert.Empty(t, Paginate(1000, 10, items))
}

func TestPaginateConcatenationReconstructsInput(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}

	var rebuilt []string
	for page := 1; ; page++ {
		window := Paginate(page, 3, items)
		if len(window) == 0 {
			break
		}
		rebuilt = append(rebuilt, window...)
	}

	assert.Equal(t, items, rebuilt)
}

func TestPaginateNonPositivePageDefaultsToFirst(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, Paginate(1, 2, items), Paginate(0, 2, items))
	assert.Equal(t, Paginate(1, 2, items), Paginate(-3, 2, items))
}

func TestPaginateEmptyInput(t *testing.T) {
	assert.Empty(t, Paginate(1, 10, []int(nil)))
}

func TestPaginateHugePageNumber(t *testing.T) {
	items := []int{1, 2, 3}

	// Offsets whose multiplication would overflow are still just empty pages.
	assert.Empty(t, Paginate(1<<60, 10, items))
	assert.Empty(t, Paginate(math.MaxInt, 10, items))
	assert.Empty(t, Paginate(math.MaxInt, math.MaxInt, items))
}

func TestPaginateNonPositiveSize(t *testing.T) {
	assert.Empty(t, Paginate(1, 0, []int{1, 2, 3}))
	assert.Empty(t, Paginate(1, -5, []int{1, 2, 3}))
}
