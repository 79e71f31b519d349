package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func answerFor(malicious, judged bool) Answer {
	return Answer{
		Scenario: Scenario{
			Kind:        KindSuspiciousSMS,
			SMS:         &SMSMessage{Sender: "x", Text: "y"},
			IsMalicious: malicious,
			Explanation: "z",
		},
		JudgedMalicious: judged,
		IsCorrect:       malicious == judged,
	}
}

func TestAggregate(t *testing.T) {
	t.Run("EmptyLogScoresZero", func(t *testing.T) {
		result := Aggregate(nil)
		assert.Equal(t, PerformanceResult{}, result)
	})

	t.Run("AllCorrect", func(t *testing.T) {
		answers := []Answer{
			answerFor(true, true),
			answerFor(false, false),
			answerFor(true, true),
			answerFor(false, false),
		}
		result := Aggregate(answers)

		assert.Equal(t, 4, result.Total)
		assert.Equal(t, 4, result.Correct)
		assert.Equal(t, 100, result.Score)
		assert.Equal(t, 2, result.MaliciousTotal)
		assert.Equal(t, 2, result.MaliciousCorrect)
		assert.Equal(t, 2, result.SafeTotal)
		assert.Equal(t, 2, result.SafeCorrect)
	})

	t.Run("RoundsToNearest", func(t *testing.T) {
		// 2 of 3 correct: 66.67 rounds to 67.
		answers := []Answer{
			answerFor(true, true),
			answerFor(true, true),
			answerFor(false, true),
		}
		result := Aggregate(answers)
		assert.Equal(t, 67, result.Score)
	})

	t.Run("PerCategoryBreakdown", func(t *testing.T) {
		answers := []Answer{
			answerFor(true, false),  // missed scam
			answerFor(false, true),  // false alarm
			answerFor(true, true),   // caught scam
			answerFor(false, false), // correct safe
		}
		result := Aggregate(answers)

		assert.Equal(t, 2, result.Correct)
		assert.Equal(t, 50, result.Score)
		assert.Equal(t, 2, result.MaliciousTotal)
		assert.Equal(t, 1, result.MaliciousCorrect)
		assert.Equal(t, 2, result.SafeTotal)
		assert.Equal(t, 1, result.SafeCorrect)
	})

	t.Run("Idempotent", func(t *testing.T) {
		answers := []Answer{answerFor(true, true), answerFor(false, true)}
		first := Aggregate(answers)
		second := Aggregate(answers)
		assert.Equal(t, first, second)
	})
}
