package domain

import "math"

// PerformanceResult holds aggregate correctness statistics derived from a
// completed answer log. It is computed fresh on demand, never cached.
type PerformanceResult struct {
	Total            int `json:"total"`
	Correct          int `json:"correct"`
	Score            int `json:"score"`
	MaliciousTotal   int `json:"maliciousTotal"`
	MaliciousCorrect int `json:"maliciousCorrect"`
	SafeTotal        int `json:"safeTotal"`
	SafeCorrect      int `json:"safeCorrect"`
}

// Aggregate computes a PerformanceResult from an answer log. It is pure
// and idempotent: the same log always yields the same result. An empty
// log yields a zero score, never a division by zero.
func Aggregate(answers []Answer) PerformanceResult {
	result := PerformanceResult{Total: len(answers)}

	for _, a := range answers {
		if a.IsCorrect {
			result.Correct++
		}
		if a.Scenario.IsMalicious {
			result.MaliciousTotal++
			if a.IsCorrect {
				result.MaliciousCorrect++
			}
		} else {
			result.SafeTotal++
			if a.IsCorrect {
				result.SafeCorrect++
			}
		}
	}

	if result.Total > 0 {
		result.Score = int(math.Round(float64(result.Correct) / float64(result.Total) * 100))
	}
	return result
}
