package scenariogen

import (
	"fmt"
	"strings"

	"eldersafe/internal/domain"
)

// Profile/post image IDs the UI can render for social media scenarios.
var (
	profileImageIDs = []string{
		"social-profile-cruise", "social-profile-natgeo", "social-profile-anna",
		"social-profile-john", "social-profile-community", "social-profile-crypto",
		"social-profile-aunt", "social-profile-baker", "social-profile-recruiter",
		"social-profile-friend2", "social-profile-news", "social-profile-health",
		"social-profile-charity", "social-profile-grandma", "social-profile-tech-support",
	}
	postImageIDs = []string{
		"social-post-cruise", "social-post-nature", "social-post-console",
		"social-post-lost-pet", "social-post-chart", "social-post-cake",
		"social-post-job", "social-post-vacation", "social-post-breaking",
		"social-post-pills", "social-post-charity", "social-post-baby",
		"social-post-virus-warning",
	}
)

const promptHeader = `You are an AI assistant for an internet safety training app for elderly users. Your task is to generate a list of realistic %s scenarios for a quiz.

Generate %d unique scenarios. Do not repeat scenarios within the batch.

Respond with ONLY a single JSON array containing %d objects, no surrounding prose.`

// Field policy stated once per prompt: fields that do not apply to a
// scenario must be omitted entirely, never set to null, "", or a
// placeholder such as "[none]".
const omitPolicy = `If an optional field does not apply to a scenario, omit the field entirely. Never use null, an empty string, or placeholder text like "[none]".`

func buildPrompt(kind domain.Kind, count int) (string, error) {
	switch kind {
	case domain.KindSuspiciousSMS:
		return buildSMSPrompt(count), nil
	case domain.KindOnlineBanking:
		return buildBankingPrompt(count), nil
	case domain.KindFakeGovWebsite:
		return buildGovWebsitePrompt(count), nil
	case domain.KindSocialMedia:
		return buildSocialPrompt(count), nil
	default:
		return "", fmt.Errorf("no prompt template for kind %s", kind)
	}
}

func buildSMSPrompt(count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, "SMS message", count, count)
	b.WriteString(`

Each object has exactly these fields:
- "sender": string, the sender of the message, e.g. "555-0102" or "Delivery Service".
- "text": string, the content of the message.
- "isScam": boolean, true if the message is a scam, false if it is safe.
- "explanation": string, a concise explanation of why it is a scam or safe.

Provide a mix of scams and safe messages. Scams should use common tactics like urgency, suspicious links, unexpected prizes, or requests for personal information. Safe messages should be typical, everyday communications.

Example of a scam:
{"sender": "555-0102", "text": "Your bank account is locked. Click this link immediately and enter your OTP: bit.ly/secure-my-acct", "isScam": true, "explanation": "It creates a sense of urgency and uses a suspicious, shortened link to trick you into giving away your information."}

Example of a safe message:
{"sender": "Doctor's Office", "text": "Reminder: Your appointment is on Friday at 3 PM. Please reply YES to confirm.", "isScam": false, "explanation": "The request is simple, expected, and doesn't ask for sensitive information or for you to click a strange link."}`)
	return b.String()
}

func buildBankingPrompt(count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, "online banking", count, count)
	b.WriteString(`

Each object has exactly these fields:
- "type": string, one of ["email", "notification", "offer", "login", "sms"].
- "sender": string, only for "email" and "sms" types.
- "subject": string, only for "email" type.
- "text": string, the main content of the message or scenario description.
- "url": string, only when a URL is part of the scenario, e.g. a login page URL.
- "isScam": boolean, true if the situation is a scam, false if it is safe.
- "explanation": string, a concise explanation of why it is a scam or safe.

`)
	b.WriteString(omitPolicy)
	b.WriteString(`

Provide a mix of scams and safe situations. Scams should use common phishing tactics, fake URLs, pressure tactics, and too-good-to-be-true offers. Safe situations should represent normal banking interactions. Ensure URLs for scams look subtly wrong (e.g. net-bank.co, nett-bank.com, an IP address). Ensure URLs for safe scenarios are correct (e.g. net-bank.com).

Example of a scam:
{"type": "email", "sender": "security@nett-bank.com", "subject": "Urgent: Verify Your Account", "text": "We detected unusual activity. Verify your identity within 24 hours or your account will be suspended.", "url": "http://nett-bank.com/verify", "isScam": true, "explanation": "The sender domain is misspelled and the message pressures you with a deadline to click a fake verification link."}

Example of a safe situation:
{"type": "notification", "text": "Your monthly statement for March is now available in your online banking inbox.", "isScam": false, "explanation": "This is a routine statement notification that does not ask for credentials or urgent action."}`)
	return b.String()
}

func buildGovWebsitePrompt(count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, "government website", count, count)
	b.WriteString(`

Each object has exactly these fields:
- "url": string, the full website URL including http/https. For suspicious sites, use non-.gov domains (like .com, .net, .org, .info) or deceptive domains (like mygov-portal.com, tax.gov-portal.net). For safe sites, use official .gov domains. Also use http for some suspicious sites.
- "title": string, the webpage title.
- "body": string, the text content of the page.
- "inputs": array of objects with "label" and "placeholder" fields representing form fields. Use an empty array if the site is informational.
- "isSuspicious": boolean, true if suspicious, false if safe.
- "explanation": string, a concise explanation referencing the URL and content.

Provide a mix of suspicious and safe sites. Suspicious sites should create false urgency, ask for unnecessary personal/financial data, or mimic real services on fake domains. Safe sites should be plausible official government services or informational pages. Avoid generic placeholders like "[fake website]".

Example of a suspicious site:
{"url": "http://tax-refund-claims.info", "title": "Claim Your Tax Refund Now", "body": "You are owed $542. Enter your bank details below to receive your refund within 24 hours.", "inputs": [{"label": "Bank Account Number", "placeholder": "Enter account number"}, {"label": "Social Security Number", "placeholder": "XXX-XX-XXXX"}], "isSuspicious": true, "explanation": "Tax agencies never collect bank details through unofficial .info domains, and the urgency is a classic pressure tactic."}

Example of a safe site:
{"url": "https://www.usa.gov/renew-passport", "title": "Renew Your Passport", "body": "Learn how to renew your passport by mail or in person, including fees and processing times.", "inputs": [], "isSuspicious": false, "explanation": "This is an informational page on an official .gov domain that does not request personal data."}`)
	return b.String()
}

func buildSocialPrompt(count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, promptHeader, "social media", count, count)
	fmt.Fprintf(&b, `

Each object has exactly these fields:
- "platform": string, e.g. "Instagram", "Facebook", "Instagram DM", or "Facebook DM".
- "profileName": string, the name of the user or page making the post or sending the message.
- "profileImageId": string, chosen from this list: %s.
- "imageId": string, only for posts that show an image, chosen from this list: %s. Omit for DMs and text-only posts.
- "text": string, the text content of the post or message.
- "isScam": boolean, true if the situation is a scam, false if it is safe.
- "explanation": string, a concise explanation of why it is a scam or safe.

`, strings.Join(profileImageIDs, ", "), strings.Join(postImageIDs, ", "))
	b.WriteString(omitPolicy)
	b.WriteString(`

Provide a mix of scams and safe posts. Scams can include phishing, fake giveaways, investment scams, romance scams, account takeovers, and marketplace fraud. Safe posts should be normal social interactions.

Example of a scam:
{"platform": "Instagram", "profileName": "CruiseDeals_Official", "profileImageId": "social-profile-cruise", "imageId": "social-post-cruise", "text": "You've been selected for a FREE 7-day Caribbean cruise! To claim your prize, click the link in our bio and enter your details. Limited spots available, act fast!", "isScam": true, "explanation": "'Too good to be true' offers, pressure to act fast, and requests for personal information are major red flags."}

Example of a safe post:
{"platform": "Facebook", "profileName": "Local Community Group", "profileImageId": "social-profile-community", "imageId": "social-post-lost-pet", "text": "Found this sweet dog wandering near the park. No collar. Does anyone recognize her? Please share so we can find her owner!", "isScam": false, "explanation": "This is a genuine attempt to help without red flags like asking for money or clicking strange links."}`)
	return b.String()
}
