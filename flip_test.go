package fsm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/museun/fsm"
)

func TestFlip(t *testing.T) {
	t.Parallel()

	t.Run("TogglesAndReturnsPrior", func(t *testing.T) {
		t.Parallel()

		cur := off
		prior := fsm.Flip(&cur)
		assert.Equal(t, off, prior)
		assert.Equal(t, on, cur)
	})

	t.Run("TogglesBack", func(t *testing.T) {
		t.Parallel()

		cur := on
		prior := fsm.Flip(&cur)
		assert.Equal(t, on, prior)
		assert.Equal(t, off, cur)
	})

	t.Run("TwiceRestoresOriginal", func(t *testing.T) {
		t.Parallel()

		cur := off
		fsm.Flip(&cur)
		fsm.Flip(&cur)
		assert.Equal(t, off, cur)
	})

	t.Run("AgreesWithNext", func(t *testing.T) {
		t.Parallel()

		flipped, stepped := off, off
		fsm.Flip(&flipped)
		fsm.Next(&stepped)
		assert.Equal(t, stepped, flipped)
	})

	t.Run("AlternatesIndefinitely", func(t *testing.T) {
		t.Parallel()

		cur := off
		for i := range 10 {
			prior := fsm.Flip(&cur)
			if i%2 == 0 {
				assert.Equal(t, off, prior)
				assert.Equal(t, on, cur)
			} else {
				assert.Equal(t, on, prior)
				assert.Equal(t, off, cur)
			}
		}
	})
}

func TestBinaryCursorOps(t *testing.T) {
	t.Parallel()

	t.Run("NextAndPreviousCoincide", func(t *testing.T) {
		t.Parallel()

		a, b := off, off
		fsm.Next(&a)
		fsm.Previous(&b)
		assert.Equal(t, a, b)
	})

	t.Run("BoundedIterationBothEnds", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []toggle{off, on}, fsm.Once(off).Collect())
		assert.Equal(t, []toggle{on, off}, fsm.Once(on).Rev().Collect())
	})
}
