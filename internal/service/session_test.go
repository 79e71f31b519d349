package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"eldersafe/internal/adapter"
	"eldersafe/internal/cache"
	"eldersafe/internal/config"
	"eldersafe/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (domain.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return adapter.NewRedisCacheAdapter(client), mr
}

func testQuizConfig() config.QuizConfig {
	return config.QuizConfig{
		Source:       "llm",
		DefaultCount: 4,
		MaxSteps:     4,
		SessionTTL:   time.Hour,
	}
}

func newTestSessionService(t *testing.T, generator domain.ScenarioGenerationService) (*SessionService, *miniredis.Miniredis) {
	t.Helper()
	cacheAdapter, mr := newTestCache(t)
	scenarioCache := NewScenarioCacheService(cacheAdapter, time.Hour)
	return NewSessionService(cacheAdapter, generator, scenarioCache, testQuizConfig(), 5*time.Second), mr
}

func TestSessionService_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("HappyPath", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, mr := newTestSessionService(t, gen)

		session, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "")
		require.NoError(t, err)

		assert.Equal(t, domain.StateLive, session.State)
		assert.Len(t, session.Scenarios, 4)
		assert.Equal(t, 1, gen.calls)

		// Scenario IDs are normalized to 1..N before storage.
		seen := map[int]bool{}
		for _, s := range session.Scenarios {
			seen[s.ID] = true
		}
		for i := 1; i <= 4; i++ {
			assert.True(t, seen[i], "missing id %d", i)
		}

		// Both the session and the scenario pool are persisted; an
		// anonymous start lands the pool in the shared scope.
		assert.True(t, mr.Exists(cache.SessionKey(session.ID)))
		assert.True(t, mr.Exists(cache.ScenariosKey("shared", string(session.Kind))))
	})

	t.Run("RepeatStartReusesPool", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, _ := newTestSessionService(t, gen)

		first, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "senior-1")
		require.NoError(t, err)
		second, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "senior-1")
		require.NoError(t, err)

		assert.Equal(t, 1, gen.calls, "second start must hit the cached pool")
		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, second.Scenarios, 4)
	})

	t.Run("DistinctClientsGetOwnPools", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, _ := newTestSessionService(t, gen)

		_, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "senior-1")
		require.NoError(t, err)
		_, err = svc.Start(ctx, domain.KindSuspiciousSMS, 4, "senior-2")
		require.NoError(t, err)

		assert.Equal(t, 2, gen.calls)
	})

	t.Run("AnonymousStartsSharePool", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, _ := newTestSessionService(t, gen)

		_, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "")
		require.NoError(t, err)
		_, err = svc.Start(ctx, domain.KindSuspiciousSMS, 4, "  ")
		require.NoError(t, err)

		assert.Equal(t, 1, gen.calls)
	})

	t.Run("PoolScopedByKind", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, _ := newTestSessionService(t, gen)

		_, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "senior-1")
		require.NoError(t, err)
		_, err = svc.Start(ctx, domain.KindOnlineBanking, 4, "senior-1")
		require.NoError(t, err)

		assert.Equal(t, 2, gen.calls)
	})

	t.Run("CorruptPoolRegenerated", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, mr := newTestSessionService(t, gen)

		key := cache.ScenariosKey("senior-1", string(domain.KindSuspiciousSMS))
		require.NoError(t, mr.Set(key, "garbage{"))

		session, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "senior-1")
		require.NoError(t, err)
		assert.Equal(t, domain.StateLive, session.State)
		assert.Equal(t, 1, gen.calls, "corrupt entry must be treated as a miss")

		// The corrupt entry is replaced with the regenerated pool.
		var pool []domain.Scenario
		raw, err := mr.Get(key)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal([]byte(raw), &pool))
		assert.Len(t, pool, 4)
	})

	t.Run("InvalidKind", func(t *testing.T) {
		svc, _ := newTestSessionService(t, &mockGenerator{scenarios: testScenarios(4)})
		_, err := svc.Start(ctx, domain.Kind("phone-call"), 4, "")
		assertCode(t, err, domain.CodeInvalidKind)
	})

	t.Run("ZeroCountUsesDefault", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, _ := newTestSessionService(t, gen)

		_, err := svc.Start(ctx, domain.KindSuspiciousSMS, 0, "")
		require.NoError(t, err)
		assert.Equal(t, 4, gen.lastCount)
	})

	t.Run("GenerationFailureYieldsErroredSession", func(t *testing.T) {
		gen := &mockGenerator{err: domain.NewGenerationFailedError(errors.New("backend down"))}
		svc, _ := newTestSessionService(t, gen)

		session, err := svc.Start(ctx, domain.KindOnlineBanking, 4, "")
		require.NoError(t, err)
		assert.Equal(t, domain.StateErrored, session.State)
		assert.NotEmpty(t, session.FailureReason)

		// The errored session is persisted and observable.
		loaded, err := svc.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StateErrored, loaded.State)
	})

	t.Run("ConcurrentStartsDoNotCrash", func(t *testing.T) {
		gen := &mockGenerator{scenarios: testScenarios(4)}
		svc, _ := newTestSessionService(t, gen)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
	})
}

func TestSessionService_Lifecycle(t *testing.T) {
	ctx := context.Background()

	start := func(t *testing.T) (*SessionService, *domain.QuizSession) {
		svc, _ := newTestSessionService(t, &mockGenerator{scenarios: testScenarios(4)})
		session, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "")
		require.NoError(t, err)
		return svc, session
	}

	t.Run("AnswerPersistsAcrossLoads", func(t *testing.T) {
		svc, session := start(t)

		outcome, updated, err := svc.Answer(ctx, session.ID, true)
		require.NoError(t, err)
		assert.NotNil(t, outcome)
		assert.Len(t, updated.Answers, 1)

		loaded, err := svc.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Len(t, loaded.Answers, 1)
		assert.Equal(t, 0, loaded.CurrentStep)
	})

	t.Run("FullRunToCompletion", func(t *testing.T) {
		svc, session := start(t)

		for i := 0; i < 4; i++ {
			_, _, err := svc.Answer(ctx, session.ID, true)
			require.NoError(t, err)
			_, err = svc.Advance(ctx, session.ID)
			require.NoError(t, err)
		}

		loaded, err := svc.Get(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StateComplete, loaded.State)

		result, err := svc.Results(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, result.Total)
	})

	t.Run("PerfectRunScores100", func(t *testing.T) {
		svc, session := start(t)

		loaded, err := svc.Get(ctx, session.ID)
		require.NoError(t, err)
		for i := 0; i < len(loaded.Scenarios); i++ {
			current, err := svc.Get(ctx, session.ID)
			require.NoError(t, err)
			truth := current.Scenarios[current.CurrentStep].IsMalicious

			outcome, _, err := svc.Answer(ctx, session.ID, truth)
			require.NoError(t, err)
			assert.True(t, outcome.Correct)
			_, err = svc.Advance(ctx, session.ID)
			require.NoError(t, err)
		}

		result, err := svc.Results(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, result.Total, result.Correct)
	})

	t.Run("ReviewRoundTrip", func(t *testing.T) {
		svc, session := start(t)

		_, _, err := svc.Answer(ctx, session.ID, true)
		require.NoError(t, err)
		_, err = svc.Advance(ctx, session.ID)
		require.NoError(t, err)

		reviewed, err := svc.GoTo(ctx, session.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.StateReviewing, reviewed.State)
		assert.Equal(t, 0, reviewed.CurrentStep)

		// Forward from review returns to the live step.
		advanced, err := svc.Advance(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StateLive, advanced.State)
		assert.Equal(t, 1, advanced.CurrentStep)
	})

	t.Run("ResultsBeforeCompletion", func(t *testing.T) {
		svc, session := start(t)
		_, err := svc.Results(ctx, session.ID)
		assertCode(t, err, domain.CodeEmptyResultSet)
	})

	t.Run("UnknownSession", func(t *testing.T) {
		svc, _ := newTestSessionService(t, &mockGenerator{scenarios: testScenarios(4)})
		_, err := svc.Get(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		assertCode(t, err, domain.CodeSessionNotFound)
	})

	t.Run("ExpiredSession", func(t *testing.T) {
		svc, mr := newTestSessionService(t, &mockGenerator{scenarios: testScenarios(4)})
		session, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "")
		require.NoError(t, err)

		mr.FastForward(2 * time.Hour)

		_, err = svc.Get(ctx, session.ID)
		assertCode(t, err, domain.CodeSessionNotFound)
	})

	t.Run("ExpiredMidTransitionNotResurrected", func(t *testing.T) {
		svc, mr := newTestSessionService(t, &mockGenerator{scenarios: testScenarios(4)})
		session, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "")
		require.NoError(t, err)

		loaded, err := svc.Get(ctx, session.ID)
		require.NoError(t, err)
		_, err = loaded.Answer(true)
		require.NoError(t, err)

		// The entry expires between load and commit; the commit must
		// not write it back with a fresh TTL.
		mr.Del(cache.SessionKey(session.ID))

		err = svc.saveExisting(ctx, loaded)
		assertCode(t, err, domain.CodeSessionNotFound)
		assert.False(t, mr.Exists(cache.SessionKey(session.ID)))
	})

	t.Run("CorruptSessionTreatedAsNotFound", func(t *testing.T) {
		svc, mr := newTestSessionService(t, &mockGenerator{scenarios: testScenarios(4)})
		session, err := svc.Start(ctx, domain.KindSuspiciousSMS, 4, "")
		require.NoError(t, err)

		require.NoError(t, mr.Set(cache.SessionKey(session.ID), "{not json"))

		_, err = svc.Get(ctx, session.ID)
		assertCode(t, err, domain.CodeSessionNotFound)
		assert.False(t, mr.Exists(cache.SessionKey(session.ID)), "corrupt entry should be deleted")
	})
}

func TestScenarioCacheService(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		cacheAdapter, _ := newTestCache(t)
		svc := NewScenarioCacheService(cacheAdapter, time.Hour)

		stored := testScenarios(3)
		require.NoError(t, svc.Put(ctx, "client-1", domain.KindSuspiciousSMS, stored))

		loaded, err := svc.Get(ctx, "client-1", domain.KindSuspiciousSMS)
		require.NoError(t, err)
		require.Len(t, loaded, 3)
		assert.Equal(t, stored[0].SMS.Sender, loaded[0].SMS.Sender)
		assert.Equal(t, stored[2].IsMalicious, loaded[2].IsMalicious)
	})

	t.Run("MissOnUnknownScope", func(t *testing.T) {
		cacheAdapter, _ := newTestCache(t)
		svc := NewScenarioCacheService(cacheAdapter, time.Hour)

		_, err := svc.Get(ctx, "missing", domain.KindSuspiciousSMS)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("CorruptEntryInvalidatedAndReportedAsMiss", func(t *testing.T) {
		cacheAdapter, mr := newTestCache(t)
		svc := NewScenarioCacheService(cacheAdapter, time.Hour)

		key := cache.ScenariosKey("client-1", string(domain.KindSuspiciousSMS))
		require.NoError(t, mr.Set(key, "garbage{"))

		_, err := svc.Get(ctx, "client-1", domain.KindSuspiciousSMS)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.False(t, mr.Exists(key), "corrupt entry should be invalidated")
	})

	t.Run("Invalidate", func(t *testing.T) {
		cacheAdapter, mr := newTestCache(t)
		svc := NewScenarioCacheService(cacheAdapter, time.Hour)

		require.NoError(t, svc.Put(ctx, "client-1", domain.KindSuspiciousSMS, testScenarios(2)))
		require.NoError(t, svc.Invalidate(ctx, "client-1", domain.KindSuspiciousSMS))
		assert.False(t, mr.Exists(cache.ScenariosKey("client-1", string(domain.KindSuspiciousSMS))))
	})

	t.Run("LastWriteWins", func(t *testing.T) {
		cacheAdapter, _ := newTestCache(t)
		svc := NewScenarioCacheService(cacheAdapter, time.Hour)

		first := testScenarios(2)
		second := testScenarios(3)
		require.NoError(t, svc.Put(ctx, "client-1", domain.KindSuspiciousSMS, first))
		require.NoError(t, svc.Put(ctx, "client-1", domain.KindSuspiciousSMS, second))

		loaded, err := svc.Get(ctx, "client-1", domain.KindSuspiciousSMS)
		require.NoError(t, err)
		assert.Len(t, loaded, 3)
	})
}
