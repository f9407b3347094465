package kernel_test

import (
	"sync"
	"testing"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderNumberSequence_Next(t *testing.T) {
	t.Run("should start after the offset", func(t *testing.T) {
		seq := kernel.NewOrderNumberSequence("ORD", 1000)

		assert.Equal(t, "ORD1001", seq.Next().String())
		assert.Equal(t, "ORD1002", seq.Next().String())
	})

	t.Run("should fall back to default prefix", func(t *testing.T) {
		seq := kernel.NewOrderNumberSequence("", kernel.DefaultOrderNumberOffset)

		n := seq.Next()

		require.NoError(t, n.Validate())
		assert.Equal(t, "ORD1001", n.String())
		assert.Equal(t, int64(1001), n.Counter())
	})

	t.Run("should be unique under concurrent use", func(t *testing.T) {
		seq := kernel.NewOrderNumberSequence("ORD", 0)
		const workers, perWorker = 8, 250

		var mu sync.Mutex
		seen := make(map[string]struct{}, workers*perWorker)
		var wg sync.WaitGroup
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					n := seq.Next().String()
					mu.Lock()
					seen[n] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Len(t, seen, workers*perWorker)
	})
}

func TestOrderNumberSequence_AdvancePast(t *testing.T) {
	seq := kernel.NewOrderNumberSequence("ORD", 1000)

	seq.AdvancePast(1500)
	assert.Equal(t, "ORD1501", seq.Next().String())

	seq.AdvancePast(10)
	assert.Equal(t, "ORD1502", seq.Next().String())
}

func TestParseOrderNumber(t *testing.T) {
	t.Run("should parse a generated number", func(t *testing.T) {
		n, err := kernel.ParseOrderNumber("ORD1001")

		require.NoError(t, err)
		assert.True(t, n.IsEqual(kernel.NewOrderNumberSequence("ORD", 1000).Next()))
	})

	t.Run("should reject malformed numbers", func(t *testing.T) {
		for _, input := range []string{"", "ORD", "1001", "ORD-1", "ORD0", "ORD12a"} {
			_, err := kernel.ParseOrderNumber(input)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, input)
		}
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var n kernel.OrderNumber

		require.ErrorIs(t, n.Validate(), kernel.ErrOrderNumberIsNotConstructed)
	})
}
