package catalog

import (
	"context"
	"testing"

	"eldersafe/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_GenerateScenarios(t *testing.T) {
	ctx := context.Background()
	c := NewCatalog()

	t.Run("EveryKindHasAPool", func(t *testing.T) {
		for _, kind := range domain.Kinds() {
			scenarios, err := c.GenerateScenarios(ctx, kind, 8)
			require.NoError(t, err, string(kind))
			assert.NotEmpty(t, scenarios, string(kind))
			for _, s := range scenarios {
				assert.NoError(t, s.Validate(), "kind %s", kind)
				assert.Equal(t, kind, s.Kind)
			}
		}
	})

	t.Run("CapsToCount", func(t *testing.T) {
		scenarios, err := c.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 3)
		require.NoError(t, err)
		assert.Len(t, scenarios, 3)
	})

	t.Run("CountLargerThanPool", func(t *testing.T) {
		scenarios, err := c.GenerateScenarios(ctx, domain.KindSocialMedia, 100)
		require.NoError(t, err)
		assert.Len(t, scenarios, len(socialPool))
	})

	t.Run("MixesScamAndSafe", func(t *testing.T) {
		scenarios, err := c.GenerateScenarios(ctx, domain.KindOnlineBanking, 50)
		require.NoError(t, err)

		var scam, safe int
		for _, s := range scenarios {
			if s.IsMalicious {
				scam++
			} else {
				safe++
			}
		}
		assert.Positive(t, scam)
		assert.Positive(t, safe)
	})

	t.Run("InvalidKind", func(t *testing.T) {
		_, err := c.GenerateScenarios(ctx, domain.Kind("phone-call"), 8)
		assert.Error(t, err)
	})

	t.Run("InvalidCount", func(t *testing.T) {
		_, err := c.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 0)
		assert.Error(t, err)
	})

	t.Run("DoesNotMutatePool", func(t *testing.T) {
		firstSender := smsPool[0].SMS.Sender
		for i := 0; i < 10; i++ {
			_, err := c.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 5)
			require.NoError(t, err)
		}
		assert.Equal(t, firstSender, smsPool[0].SMS.Sender)
	})
}
