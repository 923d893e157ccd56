package shipment_test

import (
	"regexp"
	"sync"
	"testing"

	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var trackingNumberPattern = regexp.MustCompile(`^[A-Z0-9]{8}$`)

func TestGenerateTrackingNumber(t *testing.T) {
	t.Run("generates 8 uppercase alphanumeric characters", func(t *testing.T) {
		for range 100 {
			tn := shipment.GenerateTrackingNumber()
			assert.Regexp(t, trackingNumberPattern, tn.String())
			assert.False(t, tn.IsZero())
		}
	})

	t.Run("concurrently generated numbers are pairwise distinct", func(t *testing.T) {
		const n = 200

		var mu sync.Mutex
		seen := make(map[string]struct{}, n)

		var g errgroup.Group
		for range n {
			g.Go(func() error {
				tn := shipment.GenerateTrackingNumber()
				mu.Lock()
				seen[tn.String()] = struct{}{}
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())

		assert.Len(t, seen, n)
	})
}

func TestParseTrackingNumber(t *testing.T) {
	t.Run("accepts and normalizes lowercase input", func(t *testing.T) {
		tn, err := shipment.ParseTrackingNumber("ab12cd34")
		require.NoError(t, err)
		assert.Equal(t, "AB12CD34", tn.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		tn, err := shipment.ParseTrackingNumber("  AB12CD34 ")
		require.NoError(t, err)
		assert.Equal(t, "AB12CD34", tn.String())
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := shipment.ParseTrackingNumber("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects wrong length", func(t *testing.T) {
		for _, s := range []string{"AB12CD3", "AB12CD345"} {
			_, err := shipment.ParseTrackingNumber(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("rejects characters outside the alphabet", func(t *testing.T) {
		for _, s := range []string{"AB12CD3-", "AB12 D34", "AB12CD3å"} {
			_, err := shipment.ParseTrackingNumber(s)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestRestoreTrackingNumber(t *testing.T) {
	t.Run("restores persisted value verbatim", func(t *testing.T) {
		tn := shipment.RestoreTrackingNumber("AB12CD34")
		assert.Equal(t, "AB12CD34", tn.String())
		assert.False(t, tn.IsZero())
	})

	t.Run("empty string restores the zero value", func(t *testing.T) {
		tn := shipment.RestoreTrackingNumber("")
		assert.True(t, tn.IsZero())
	})
}
