package summarygen

import (
	"context"
	"errors"
	"testing"

	"eldersafe/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

var summaryInput = domain.SummaryInput{
	ScenarioName: "Suspicious SMS Messages",
	ActionsTaken: []string{
		`Correctly judged an SMS from "555-0102" as a scam.`,
		`Incorrectly judged an SMS from "Pharmacy" as a scam.`,
	},
	IdentifiedRisks: []domain.IdentifiedRisk{
		{Description: `an SMS from "555-0102"`, CorrectlyIdentified: true},
	},
	Score: 50,
}

const summaryJSON = `{
  "overallSummary": "You did well overall.",
  "strengths": ["Spotted the urgent-link scam."],
  "areasForImprovement": ["Double-check before flagging routine notifications."]
}`

func TestSummarizer_GenerateSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("HappyPath", func(t *testing.T) {
		client := &fakeClient{response: summaryJSON}
		s := NewSummarizer(client)

		summary, err := s.GenerateSummary(ctx, summaryInput)
		require.NoError(t, err)
		assert.Equal(t, "You did well overall.", summary.OverallSummary)
		assert.Len(t, summary.Strengths, 1)
		assert.Len(t, summary.AreasForImprovement, 1)

		require.Len(t, client.prompts, 1)
		prompt := client.prompts[0]
		assert.Contains(t, prompt, "Suspicious SMS Messages")
		assert.Contains(t, prompt, "Overall Score: 50%")
		assert.Contains(t, prompt, "Correctly Identified: Yes")
	})

	t.Run("ProseAroundJSON", func(t *testing.T) {
		client := &fakeClient{response: "Sure, here is the summary:\n" + summaryJSON + "\nHope this helps!"}
		s := NewSummarizer(client)

		summary, err := s.GenerateSummary(ctx, summaryInput)
		require.NoError(t, err)
		assert.Equal(t, "You did well overall.", summary.OverallSummary)
	})

	t.Run("StripsThinkBlock", func(t *testing.T) {
		client := &fakeClient{response: "<think>drafting feedback</think>" + summaryJSON}
		s := NewSummarizer(client)

		summary, err := s.GenerateSummary(ctx, summaryInput)
		require.NoError(t, err)
		assert.NotEmpty(t, summary.OverallSummary)
	})

	t.Run("BackendError", func(t *testing.T) {
		client := &fakeClient{err: errors.New("timeout")}
		s := NewSummarizer(client)

		_, err := s.GenerateSummary(ctx, summaryInput)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSummaryFailed, domainErr.Code)
	})

	t.Run("NoJSONObject", func(t *testing.T) {
		client := &fakeClient{response: "Great job!"}
		s := NewSummarizer(client)

		_, err := s.GenerateSummary(ctx, summaryInput)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSummaryFailed, domainErr.Code)
	})

	t.Run("MissingOverallSummary", func(t *testing.T) {
		client := &fakeClient{response: `{"strengths": ["x"]}`}
		s := NewSummarizer(client)

		_, err := s.GenerateSummary(ctx, summaryInput)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSummaryFailed, domainErr.Code)
	})
}

func TestGuidanceTool_GetGuidance(t *testing.T) {
	ctx := context.Background()

	t.Run("HappyPath", func(t *testing.T) {
		client := &fakeClient{response: "Never share your one-time codes with anyone who calls you."}
		g := NewGuidanceTool(client)

		tip, err := g.GetGuidance(ctx, "Is it safe to give my bank code over the phone?")
		require.NoError(t, err)
		assert.Contains(t, tip, "one-time codes")

		require.Len(t, client.prompts, 1)
		assert.Contains(t, client.prompts[0], "Is it safe to give my bank code over the phone?")
	})

	t.Run("EmptyQuestion", func(t *testing.T) {
		g := NewGuidanceTool(&fakeClient{response: "tip"})
		_, err := g.GetGuidance(ctx, "   ")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
	})

	t.Run("BackendError", func(t *testing.T) {
		g := NewGuidanceTool(&fakeClient{err: errors.New("down")})
		_, err := g.GetGuidance(ctx, "How do I spot a scam?")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeSummaryFailed, domainErr.Code)
	})

	t.Run("EmptyTip", func(t *testing.T) {
		g := NewGuidanceTool(&fakeClient{response: "<think>hmm</think>"})
		_, err := g.GetGuidance(ctx, "How do I spot a scam?")
		assert.Error(t, err)
	})
}
