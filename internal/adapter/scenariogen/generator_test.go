package scenariogen

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

const smsArray = `[
  {"id": 1, "sender": "555-0102", "text": "Your account is locked.", "isScam": true, "explanation": "Urgency and a bad link."},
  {"id": 2, "sender": "Pharmacy", "text": "Your refill is ready.", "isScam": false, "explanation": "Expected notification."}
]`

func TestGenerator_GenerateScenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("HappyPath", func(t *testing.T) {
		client := &fakeClient{response: smsArray}
		gen := NewGenerator(client)

		scenarios, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 2)
		require.NoError(t, err)
		require.Len(t, scenarios, 2)

		assert.Equal(t, domain.KindSuspiciousSMS, scenarios[0].Kind)
		assert.Equal(t, "555-0102", scenarios[0].SMS.Sender)
		assert.True(t, scenarios[0].IsMalicious)
		assert.False(t, scenarios[1].IsMalicious)

		require.Len(t, client.prompts, 1)
		assert.Contains(t, client.prompts[0], "2 unique scenarios")
	})

	t.Run("StripsThinkBlock", func(t *testing.T) {
		client := &fakeClient{response: "<think>let me write two messages</think>\n" + smsArray}
		gen := NewGenerator(client)

		scenarios, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 2)
		require.NoError(t, err)
		assert.Len(t, scenarios, 2)
	})

	t.Run("AcceptsObjectWrapper", func(t *testing.T) {
		client := &fakeClient{response: `{"scenarios": ` + smsArray + `}`}
		gen := NewGenerator(client)

		scenarios, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 2)
		require.NoError(t, err)
		assert.Len(t, scenarios, 2)
	})

	t.Run("BackendError", func(t *testing.T) {
		client := &fakeClient{err: errors.New("connection refused")}
		gen := NewGenerator(client)

		_, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 2)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	})

	t.Run("NoJSONInResponse", func(t *testing.T) {
		client := &fakeClient{response: "I cannot help with that."}
		gen := NewGenerator(client)

		_, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 2)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	})

	t.Run("SchemaViolation", func(t *testing.T) {
		// Missing explanation on the second item.
		client := &fakeClient{response: `[
			{"sender": "a", "text": "b", "isScam": true, "explanation": "c"},
			{"sender": "d", "text": "e", "isScam": false}
		]`}
		gen := NewGenerator(client)

		_, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 2)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	})

	t.Run("EmptyArray", func(t *testing.T) {
		client := &fakeClient{response: `[]`}
		gen := NewGenerator(client)

		_, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 2)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeGenerationFailed, domainErr.Code)
	})

	t.Run("InvalidKind", func(t *testing.T) {
		gen := NewGenerator(&fakeClient{response: smsArray})
		_, err := gen.GenerateScenarios(ctx, domain.Kind("phone-call"), 2)
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidKind, domainErr.Code)
	})

	t.Run("InvalidCount", func(t *testing.T) {
		gen := NewGenerator(&fakeClient{response: smsArray})
		_, err := gen.GenerateScenarios(ctx, domain.KindSuspiciousSMS, 0)
		assert.Error(t, err)
	})

	t.Run("BankingTypeLowercased", func(t *testing.T) {
		client := &fakeClient{response: `[
			{"type": "Email", "sender": "a@b.com", "subject": "Hi", "text": "x", "isScam": true, "explanation": "y"}
		]`}
		gen := NewGenerator(client)

		scenarios, err := gen.GenerateScenarios(ctx, domain.KindOnlineBanking, 1)
		require.NoError(t, err)
		assert.Equal(t, domain.BankingEmail, scenarios[0].Banking.Type)
	})
}

func TestExtractJSONArray(t *testing.T) {
	t.Run("CodeFence", func(t *testing.T) {
		out, err := extractJSONArray("```json\n[1,2]\n```")
		require.NoError(t, err)
		assert.Equal(t, "[1,2]", out)
	})

	t.Run("ProseAroundArray", func(t *testing.T) {
		out, err := extractJSONArray("Here you go: [1,2] hope it helps")
		require.NoError(t, err)
		assert.Equal(t, "[1,2]", out)
	})

	t.Run("WrapperWithoutScenarios", func(t *testing.T) {
		_, err := extractJSONArray(`{"items": []}`)
		assert.Error(t, err)
	})
}
