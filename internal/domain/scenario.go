package domain

import (
	"fmt"
	"strings"
)

// Kind identifies a scenario family. The values double as the quiz route slugs.
type Kind string

const (
	KindSuspiciousSMS  Kind = "suspicious-sms"
	KindOnlineBanking  Kind = "online-banking"
	KindFakeGovWebsite Kind = "fake-gov-website"
	KindSocialMedia    Kind = "social-media"
)

// Kinds returns all supported scenario kinds.
func Kinds() []Kind {
	return []Kind{KindSuspiciousSMS, KindOnlineBanking, KindFakeGovWebsite, KindSocialMedia}
}

// Valid reports whether k is a supported scenario kind.
func (k Kind) Valid() bool {
	switch k {
	case KindSuspiciousSMS, KindOnlineBanking, KindFakeGovWebsite, KindSocialMedia:
		return true
	}
	return false
}

// DisplayName returns the human-readable scenario family name,
// used as the scenarioName of a performance summary request.
func (k Kind) DisplayName() string {
	switch k {
	case KindSuspiciousSMS:
		return "Suspicious SMS Messages"
	case KindOnlineBanking:
		return "Online Banking Security"
	case KindFakeGovWebsite:
		return "Government Website Safety"
	case KindSocialMedia:
		return "Social Media Safety"
	default:
		return string(k)
	}
}

// BankingInteractionType is the sub-type of an online-banking scenario.
type BankingInteractionType string

const (
	BankingEmail        BankingInteractionType = "email"
	BankingNotification BankingInteractionType = "notification"
	BankingOffer        BankingInteractionType = "offer"
	BankingLogin        BankingInteractionType = "login"
	BankingSMS          BankingInteractionType = "sms"
)

// Valid reports whether t is a known banking interaction type.
func (t BankingInteractionType) Valid() bool {
	switch t {
	case BankingEmail, BankingNotification, BankingOffer, BankingLogin, BankingSMS:
		return true
	}
	return false
}

// SMSMessage is the payload of a suspicious-sms scenario.
type SMSMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// BankingInteraction is the payload of an online-banking scenario.
// Sender, Subject and URL apply only to some interaction types; the
// canonical absent value is the empty string (serialized as omitted).
type BankingInteraction struct {
	Type    BankingInteractionType `json:"type"`
	Sender  string                 `json:"sender,omitempty"`
	Subject string                 `json:"subject,omitempty"`
	Text    string                 `json:"text"`
	URL     string                 `json:"url,omitempty"`
}

// WebsiteInput is one form field shown on a government website scenario page.
type WebsiteInput struct {
	Label       string `json:"label"`
	Placeholder string `json:"placeholder"`
}

// GovWebsite is the payload of a fake-gov-website scenario.
type GovWebsite struct {
	URL    string         `json:"url"`
	Title  string         `json:"title"`
	Body   string         `json:"body"`
	Inputs []WebsiteInput `json:"inputs"`
}

// SocialPost is the payload of a social-media scenario.
// ImageID is absent (empty) for DMs and text-only posts.
type SocialPost struct {
	Platform       string `json:"platform"`
	ProfileName    string `json:"profileName"`
	ProfileImageID string `json:"profileImageId"`
	ImageID        string `json:"imageId,omitempty"`
	Text           string `json:"text"`
}

// Scenario is one quiz item: a simulated message, site or post with a
// ground-truth label and explanation. Exactly one payload pointer is set,
// matching Kind.
type Scenario struct {
	ID          int                 `json:"id"`
	Kind        Kind                `json:"kind"`
	SMS         *SMSMessage         `json:"sms,omitempty"`
	Banking     *BankingInteraction `json:"banking,omitempty"`
	GovWebsite  *GovWebsite         `json:"govWebsite,omitempty"`
	Social      *SocialPost         `json:"social,omitempty"`
	IsMalicious bool                `json:"isMalicious"`
	Explanation string              `json:"explanation"`
}

// Validate checks that the scenario carries exactly the payload its kind
// requires along with a ground-truth explanation.
func (s *Scenario) Validate() error {
	if !s.Kind.Valid() {
		return NewInvalidKindError(string(s.Kind))
	}
	if s.Explanation == "" {
		return NewInvalidInputError("scenario explanation is required")
	}

	set := 0
	if s.SMS != nil {
		set++
	}
	if s.Banking != nil {
		set++
	}
	if s.GovWebsite != nil {
		set++
	}
	if s.Social != nil {
		set++
	}
	if set != 1 {
		return NewInvalidInputError(fmt.Sprintf("scenario must have exactly one payload, has %d", set))
	}

	switch s.Kind {
	case KindSuspiciousSMS:
		if s.SMS == nil {
			return NewInvalidInputError("sms payload is required for suspicious-sms scenarios")
		}
		if s.SMS.Sender == "" || s.SMS.Text == "" {
			return NewInvalidInputError("sms sender and text are required")
		}
	case KindOnlineBanking:
		if s.Banking == nil {
			return NewInvalidInputError("banking payload is required for online-banking scenarios")
		}
		if !s.Banking.Type.Valid() {
			return NewInvalidInputError(fmt.Sprintf("invalid banking interaction type: %s", s.Banking.Type))
		}
		if s.Banking.Text == "" {
			return NewInvalidInputError("banking text is required")
		}
	case KindFakeGovWebsite:
		if s.GovWebsite == nil {
			return NewInvalidInputError("govWebsite payload is required for fake-gov-website scenarios")
		}
		if s.GovWebsite.URL == "" || s.GovWebsite.Title == "" || s.GovWebsite.Body == "" {
			return NewInvalidInputError("gov website url, title and body are required")
		}
	case KindSocialMedia:
		if s.Social == nil {
			return NewInvalidInputError("social payload is required for social-media scenarios")
		}
		if s.Social.Platform == "" || s.Social.ProfileName == "" || s.Social.Text == "" {
			return NewInvalidInputError("social platform, profile name and text are required")
		}
	}
	return nil
}

// Describe returns a short human-readable description of the scenario,
// used for summary action logs and risk descriptions.
func (s *Scenario) Describe() string {
	switch {
	case s.SMS != nil:
		return fmt.Sprintf("an SMS from %q: %s", s.SMS.Sender, truncate(s.SMS.Text, 100))
	case s.Banking != nil:
		origin := string(s.Banking.Type)
		if s.Banking.Sender != "" {
			origin = fmt.Sprintf("%s from %q", s.Banking.Type, s.Banking.Sender)
		}
		return fmt.Sprintf("a banking %s: %s", origin, truncate(s.Banking.Text, 100))
	case s.GovWebsite != nil:
		return fmt.Sprintf("a website at %s titled %q", s.GovWebsite.URL, s.GovWebsite.Title)
	case s.Social != nil:
		return fmt.Sprintf("a %s post by %q: %s", s.Social.Platform, s.Social.ProfileName, truncate(s.Social.Text, 100))
	default:
		return fmt.Sprintf("scenario %d", s.ID)
	}
}

// truncate shortens text to max runes, never cutting mid-rune.
func truncate(text string, max int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}

// NormalizeScenarios assigns sequential 1-based IDs in original order.
// Generator-assigned IDs are never trusted and always overwritten; no
// other field is altered.
func NormalizeScenarios(scenarios []Scenario) []Scenario {
	for i := range scenarios {
		scenarios[i].ID = i + 1
	}
	return scenarios
}
