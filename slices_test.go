package ruled

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceLeaves(t *testing.T) {
	t.Run("item", func(t *testing.T) {
		assert.Equal(t, Match[[]int, int, Unit](1, []int{2}), Item[int]().Apply([]int{1, 2}))
		assert.Equal(t, Expected[[]int, int](Unit{}), Item[int]().Apply(nil))
	})

	t.Run("elem", func(t *testing.T) {
		rule := Elem('a')
		assert.Equal(t, Match[[]rune, rune, Unit]('a', []rune("b")), rule.Apply([]rune("ab")))
		assert.True(t, rule.Apply([]rune("ba")).IsExpected())
	})

	t.Run("prefix", func(t *testing.T) {
		rule := Prefix([]byte("GET "))
		assert.Equal(t, Match[[]byte, []byte, Unit]([]byte("GET "), []byte("/")), rule.Apply([]byte("GET /")))
		assert.True(t, rule.Apply([]byte("GE")).IsExpected())
		assert.True(t, rule.Apply([]byte("PUT /")).IsExpected())
	})

	t.Run("prefix match can't be appended over the rest", func(t *testing.T) {
		input := []int{1, 2, 3}
		v, _, ok := Prefix([]int{1}).Apply(input).Get()
		assert.True(t, ok)
		_ = append(v, 9)
		assert.Equal(t, []int{1, 2, 3}, input)
	})

	t.Run("end", func(t *testing.T) {
		assert.Equal(t, Match[[]int, Unit, Unit](Unit{}, []int{}), SliceEnd[int]().Apply([]int{}))
		assert.True(t, SliceEnd[int]().Apply([]int{1}).IsExpected())
	})

	t.Run("combinators over tokens", func(t *testing.T) {
		positive := RangeVec(ItemPred(func(n int) bool { return n > 0 }), 1, Unbounded)
		assert.Equal(t, Match[[]int, []int, Unit]([]int{3, 2}, []int{0, 1}), positive.Apply([]int{3, 2, 0, 1}))

		whole := Fst(positive, SliceEnd[int]())
		assert.True(t, whole.Apply([]int{3, 2}).IsMatch())
		assert.True(t, whole.Apply([]int{3, 0}).IsExpected())
	})

	t.Run("unit failures converted to Failed", func(t *testing.T) {
		rule := MapFailure(Item[int](), FailedFromUnit)
		assert.Equal(t, Expected[[]int, int](FailedOf(FailedKind_Nothing)), rule.Apply(nil))
	})
}
