package scenariogen

import (
	"encoding/json"
	"fmt"
	"strings"

	"eldersafe/internal/domain"
)

// Wire shapes mirror the per-kind output schemas the prompts declare.
// IDs are accepted but never trusted; the normalizer overwrites them.

type smsWire struct {
	ID          int    `json:"id"`
	Sender      string `json:"sender"`
	Text        string `json:"text"`
	IsScam      bool   `json:"isScam"`
	Explanation string `json:"explanation"`
}

type bankingWire struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Sender      string `json:"sender"`
	Subject     string `json:"subject"`
	Text        string `json:"text"`
	URL         string `json:"url"`
	IsScam      bool   `json:"isScam"`
	Explanation string `json:"explanation"`
}

type websiteInputWire struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

type govWebsiteWire struct {
	ID           int                `json:"id"`
	URL          string             `json:"url"`
	Title        string             `json:"title"`
	Body         string             `json:"body"`
	Inputs       []websiteInputWire `json:"inputs"`
	IsSuspicious bool               `json:"isSuspicious"`
	Explanation  string             `json:"explanation"`
}

type socialWire struct {
	ID             int    `json:"id"`
	Platform       string `json:"platform"`
	ProfileName    string `json:"profileName"`
	ProfileImageID string `json:"profileImageId"`
	ImageID        string `json:"imageId"`
	Text           string `json:"text"`
	IsScam         bool   `json:"isScam"`
	Explanation    string `json:"explanation"`
}

// extractJSONArray pulls the first JSON array out of a raw completion,
// tolerating surrounding prose, code fences and reasoning blocks. Models
// that wrap the array in an object ({"scenarios": [...]}) are handled too.
func extractJSONArray(raw string) (string, error) {
	cleaned := strings.TrimSpace(raw)

	// Strip <think>...</think> blocks some models emit before the payload.
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):]
			cleaned = strings.TrimSpace(cleaned)
		}
	}

	arrStart := strings.Index(cleaned, "[")
	arrEnd := strings.LastIndex(cleaned, "]")
	objStart := strings.Index(cleaned, "{")
	objEnd := strings.LastIndex(cleaned, "}")

	// Prefer a top-level array; fall back to an object wrapper.
	if arrStart != -1 && arrEnd > arrStart && (objStart == -1 || arrStart < objStart) {
		return cleaned[arrStart : arrEnd+1], nil
	}
	if objStart != -1 && objEnd > objStart {
		var wrapper struct {
			Scenarios json.RawMessage `json:"scenarios"`
		}
		if err := json.Unmarshal([]byte(cleaned[objStart:objEnd+1]), &wrapper); err != nil {
			return "", fmt.Errorf("failed to parse object wrapper: %w", err)
		}
		if len(wrapper.Scenarios) == 0 {
			return "", fmt.Errorf("object response has no scenarios field")
		}
		return string(wrapper.Scenarios), nil
	}

	return "", fmt.Errorf("no JSON array found in response")
}

// decodeScenarios unmarshals an extracted JSON array into domain
// scenarios for the given kind and validates each one.
func decodeScenarios(kind domain.Kind, jsonStr string) ([]domain.Scenario, error) {
	var scenarios []domain.Scenario

	switch kind {
	case domain.KindSuspiciousSMS:
		var wires []smsWire
		if err := json.Unmarshal([]byte(jsonStr), &wires); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sms scenarios: %w", err)
		}
		for _, w := range wires {
			scenarios = append(scenarios, domain.Scenario{
				ID:          w.ID,
				Kind:        kind,
				SMS:         &domain.SMSMessage{Sender: w.Sender, Text: w.Text},
				IsMalicious: w.IsScam,
				Explanation: w.Explanation,
			})
		}
	case domain.KindOnlineBanking:
		var wires []bankingWire
		if err := json.Unmarshal([]byte(jsonStr), &wires); err != nil {
			return nil, fmt.Errorf("failed to unmarshal banking scenarios: %w", err)
		}
		for _, w := range wires {
			scenarios = append(scenarios, domain.Scenario{
				ID:   w.ID,
				Kind: kind,
				Banking: &domain.BankingInteraction{
					Type:    domain.BankingInteractionType(strings.ToLower(w.Type)),
					Sender:  w.Sender,
					Subject: w.Subject,
					Text:    w.Text,
					URL:     w.URL,
				},
				IsMalicious: w.IsScam,
				Explanation: w.Explanation,
			})
		}
	case domain.KindFakeGovWebsite:
		var wires []govWebsiteWire
		if err := json.Unmarshal([]byte(jsonStr), &wires); err != nil {
			return nil, fmt.Errorf("failed to unmarshal gov website scenarios: %w", err)
		}
		for _, w := range wires {
			inputs := make([]domain.WebsiteInput, 0, len(w.Inputs))
			for _, in := range w.Inputs {
				inputs = append(inputs, domain.WebsiteInput{Label: in.Label, Placeholder: in.Placeholder})
			}
			scenarios = append(scenarios, domain.Scenario{
				ID:   w.ID,
				Kind: kind,
				GovWebsite: &domain.GovWebsite{
					URL:    w.URL,
					Title:  w.Title,
					Body:   w.Body,
					Inputs: inputs,
				},
				IsMalicious: w.IsSuspicious,
				Explanation: w.Explanation,
			})
		}
	case domain.KindSocialMedia:
		var wires []socialWire
		if err := json.Unmarshal([]byte(jsonStr), &wires); err != nil {
			return nil, fmt.Errorf("failed to unmarshal social scenarios: %w", err)
		}
		for _, w := range wires {
			scenarios = append(scenarios, domain.Scenario{
				ID:   w.ID,
				Kind: kind,
				Social: &domain.SocialPost{
					Platform:       w.Platform,
					ProfileName:    w.ProfileName,
					ProfileImageID: w.ProfileImageID,
					ImageID:        w.ImageID,
					Text:           w.Text,
				},
				IsMalicious: w.IsScam,
				Explanation: w.Explanation,
			})
		}
	default:
		return nil, fmt.Errorf("unsupported scenario kind: %s", kind)
	}

	for i := range scenarios {
		if err := scenarios[i].Validate(); err != nil {
			return nil, fmt.Errorf("scenario %d failed schema validation: %w", i+1, err)
		}
	}
	return scenarios, nil
}
