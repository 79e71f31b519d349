// Package catalog provides a built-in scenario pool so quizzes keep
// working when no generation backend is reachable. Entries are curated
// rather than generated, which also makes them handy in tests.
package catalog

import (
	"context"
	"math/rand"

	"eldersafe/internal/domain"
)

// Catalog implements domain.ScenarioGenerationService from a static pool.
type Catalog struct{}

// NewCatalog creates a new Catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// GenerateScenarios returns up to count scenarios of the given kind,
// drawn in random order from the built-in pool.
func (c *Catalog) GenerateScenarios(_ context.Context, kind domain.Kind, count int) ([]domain.Scenario, error) {
	if count <= 0 {
		return nil, domain.NewInvalidInputError("scenario count must be positive")
	}
	pool, ok := pools[kind]
	if !ok {
		return nil, domain.NewInvalidKindError(string(kind))
	}

	picked := make([]domain.Scenario, len(pool))
	copy(picked, pool)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if count < len(picked) {
		picked = picked[:count]
	}
	return picked, nil
}

var _ domain.ScenarioGenerationService = (*Catalog)(nil)

var pools = map[domain.Kind][]domain.Scenario{
	domain.KindSuspiciousSMS:  smsPool,
	domain.KindOnlineBanking:  bankingPool,
	domain.KindFakeGovWebsite: govWebsitePool,
	domain.KindSocialMedia:    socialPool,
}

func sms(sender, text string, malicious bool, explanation string) domain.Scenario {
	return domain.Scenario{
		Kind:        domain.KindSuspiciousSMS,
		SMS:         &domain.SMSMessage{Sender: sender, Text: text},
		IsMalicious: malicious,
		Explanation: explanation,
	}
}

var smsPool = []domain.Scenario{
	sms("555-0102",
		"Your bank account is locked. Click this link immediately and enter your OTP: bit.ly/secure-my-acct",
		true,
		"It creates a sense of urgency and uses a suspicious, shortened link to trick you into giving away your information."),
	sms("Doctor's Office",
		"Reminder: Your appointment is on Friday at 3 PM. Please reply YES to confirm.",
		false,
		"The request is simple, expected, and doesn't ask for sensitive information or for you to click a strange link."),
	sms("Prize Dept.",
		"CONGRATS! You've won a $1000 gift card. To claim, provide your address and SSN at: real-prizes-4u.net",
		true,
		"Unsolicited prize notifications are a huge red flag, especially when they ask for sensitive personal information like your Social Security Number."),
	sms("Friend",
		"Hey, are we still on for lunch tomorrow at 12? The usual spot.",
		false,
		"This is a normal message from a friend. There are no suspicious links or urgent requests for information."),
	sms("Delivery Service",
		"We missed your delivery. A $1.99 redelivery fee is required. Please update your details here: my-package-tracking.info",
		true,
		"Scammers often use small 'fees' to get your credit card details. Legitimate delivery companies usually don't charge redelivery fees this way and the URL is not official."),
	sms("Account Services",
		"Your verification code is 843512. Do not share this with anyone. It expires in 10 minutes.",
		false,
		"This is a standard two-factor authentication message. As long as YOU initiated the login or action that prompted it, it's safe."),
	sms("Tax Refund Dept.",
		"You are eligible for a tax refund of $542. To receive your money, go to irs-claims-gov.com and fill out your details.",
		true,
		"Tax agencies do not initiate contact via text message for refunds. The URL is also fake; official US government sites end in .gov."),
	sms("Local Pharmacy",
		"Your prescription for Amoxicillin is ready for pickup at our Main St location. Refill #12345.",
		false,
		"This is a legitimate notification that you would expect to receive from your pharmacy. It provides information without asking for anything unusual."),
	sms("Streaming Service",
		"Your payment for this month was declined. To avoid service interruption, please update your billing info at: stream-service-login.net",
		true,
		"This is a common phishing scam. Always go directly to the service's official website to check your account status, never through a link in a text."),
	sms("Energy Company",
		"URGENT: Your power will be disconnected in 30 minutes due to an unpaid bill. Pay immediately with a gift card by calling 1-888-555-FAKE to prevent shutoff.",
		true,
		"Utility companies do not demand immediate payment via gift card. This is a high-pressure scam tactic. The request for a gift card is a major red flag."),
	sms("Ride Share App",
		"Your driver has arrived. Look for a blue Honda Civic, license plate XYZ-123.",
		false,
		"This is a standard and expected notification from a ride-sharing service when you request a ride."),
	sms("Gym",
		"Reminder: Your Zumba class with Maria starts in 1 hour. See you there!",
		false,
		"A normal, helpful reminder from a business you are a customer of."),
}

var bankingPool = []domain.Scenario{
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type:    domain.BankingEmail,
			Sender:  "secure.banking@net-bank.com",
			Subject: "Urgent Action Required on Your Account",
			Text:    "We have detected suspicious activity. Please log in using this link to verify your details immediately: http://net-bank-security.co. Failure to do so will result in account suspension.",
		},
		IsMalicious: true,
		Explanation: "This is a phishing attempt. The email creates false urgency, comes from a slightly suspicious email address, and uses a non-official link. Never click links in unexpected emails; always go to the official website yourself.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type: domain.BankingNotification,
			Text: "Your monthly statement for May 2024 is now available to view in the 'Documents' section.",
		},
		IsMalicious: false,
		Explanation: "This is a normal, safe notification. It's informational and doesn't ask you to click strange links or provide sensitive information.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type: domain.BankingOffer,
			Text: "Congratulations! You've been pre-approved for a $10,000 loan at 0% interest. Click here to accept and provide your personal details to finalize!",
		},
		IsMalicious: true,
		Explanation: "Be wary of 'too good to be true' offers. Unsolicited loan or prize notifications are a common tactic to get you to give up sensitive personal information.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type: domain.BankingLogin,
			URL:  "www.net-bank.com",
			Text: "The web address in your browser for your bank's login page is: https://www.net-bank.com. Is this safe to log into?",
		},
		IsMalicious: false,
		Explanation: "This is a safe URL. It uses HTTPS for a secure connection and has a legitimate-looking domain name. It's always good practice to check the URL before entering login details.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type:   domain.BankingSMS,
			Sender: "Bank Alert",
			Text:   "We've noticed a login from an unrecognized device. If this was not you, please secure your account here: net-bank.auth-access.com",
		},
		IsMalicious: true,
		Explanation: "This is a scam. The URL is not the official bank URL. Scammers often mimic security alerts to panic users into clicking malicious links.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type: domain.BankingNotification,
			Text: "A payment of $55.00 to 'Online Shopping Mart' was successful.",
		},
		IsMalicious: false,
		Explanation: "This is a standard transaction notification. If you recognize the transaction, it's safe. If not, you should contact your bank through official channels.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type:    domain.BankingEmail,
			Sender:  "support@net-bank.com",
			Subject: "Confirm Your New Payee",
			Text:    "You have added 'John Doe' as a new payee. To confirm this action, please click the link below. If you did not authorize this, contact us immediately.",
		},
		IsMalicious: false,
		Explanation: "This is a legitimate security feature. Banks often require confirmation for new payees. As long as you initiated this, it's safe to proceed.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type:    domain.BankingEmail,
			Sender:  "rewards@net-bank.com",
			Subject: "Claim Your Cash Back Reward!",
			Text:    "You've earned $25 in cash back rewards! Click here to log in and redeem: net-bank.rewards-portal.com",
		},
		IsMalicious: true,
		Explanation: "Scammers create fake rewards portals to steal your login credentials. Always access your rewards through the bank's official website.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type: domain.BankingOffer,
			Text: "Invest in our new high-yield crypto portfolio and get guaranteed 20% returns in 30 days! Limited time offer!",
		},
		IsMalicious: true,
		Explanation: "Banks are typically very conservative. Promises of 'guaranteed' high returns, especially with cryptocurrency, are a major red flag for an investment scam.",
	},
	{
		Kind: domain.KindOnlineBanking,
		Banking: &domain.BankingInteraction{
			Type: domain.BankingNotification,
			Text: "Your new debit card has been shipped and should arrive in 5-7 business days.",
		},
		IsMalicious: false,
		Explanation: "If you recently requested a new card, this is a normal and helpful notification.",
	},
}

var govWebsitePool = []domain.Scenario{
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "https://my-gov-assistance.com",
			Title: "Government Aid Portal 2026",
			Body:  "You are eligible for RM1500 Bantuan. Enter your IC number and bank details to receive payment immediately.",
			Inputs: []domain.WebsiteInput{
				{Label: "IC Number", Placeholder: "e.g., 900101-10-1234"},
				{Label: "Bank Account", Placeholder: "e.g., 1234567890"},
			},
		},
		IsMalicious: true,
		Explanation: "This is suspicious. The URL 'my-gov-assistance.com' is not an official government domain. Official Malaysian government sites end in '.gov.my'. Also, be wary of sites creating false urgency.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "https://www.hasil.gov.my/login",
			Title: "LHDN MyTax Portal",
			Body:  "Welcome to the official MyTax portal. Please log in with your credentials to access your tax information.",
			Inputs: []domain.WebsiteInput{
				{Label: "ID Pengenalan", Placeholder: "No. Kad Pengenalan"},
				{Label: "Kata Laluan", Placeholder: "Password"},
			},
		},
		IsMalicious: false,
		Explanation: "This is safe. The URL 'hasil.gov.my' is the official domain for the Malaysian Inland Revenue Board (LHDN). It's the correct place to handle tax matters.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "https://rewards-gov.info/claim-bonus",
			Title: "National Loyalty Program",
			Body:  "Congratulations! As a loyal citizen, you've won a RM500 bonus. To verify your identity, please answer these security questions.",
			Inputs: []domain.WebsiteInput{
				{Label: "Mother's Maiden Name", Placeholder: "Your Answer"},
				{Label: "First School Name", Placeholder: "Your Answer"},
			},
		},
		IsMalicious: true,
		Explanation: "This is suspicious. Government agencies do not run 'loyalty programs' or ask for sensitive security question answers in this way. The URL '.info' is also not a government domain.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "https://www.jpj.gov.my/saman-check",
			Title: "JPJ Compound Check",
			Body:  "Check for outstanding traffic compounds. Please enter your Vehicle Registration Number and IC number to proceed.",
			Inputs: []domain.WebsiteInput{
				{Label: "Vehicle Number", Placeholder: "e.g., WXA 1234"},
				{Label: "IC Number", Placeholder: "e.g., 900101-10-1234"},
			},
		},
		IsMalicious: false,
		Explanation: "This is safe. 'jpj.gov.my' is the official domain for the Road Transport Department Malaysia. This is a legitimate government service.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "https://citizen-subsidy.org/apply",
			Title: "Fuel Subsidy Application 2026",
			Body:  "The government has announced a new fuel subsidy for all citizens. Apply now to receive your monthly fuel card.",
			Inputs: []domain.WebsiteInput{
				{Label: "Full Name", Placeholder: "Your Name"},
				{Label: "IC Number", Placeholder: "e.g., 900101-10-1234"},
				{Label: "Vehicle Plate", Placeholder: "e.g., WXA 1234"},
			},
		},
		IsMalicious: true,
		Explanation: "This is suspicious. The domain '.org' is not typically used for Malaysian government services, which end in '.gov.my'. Be wary of unofficial-looking subsidy sites.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:    "https://www.mof.gov.my",
			Title:  "Ministry of Finance Malaysia",
			Body:   "Welcome to the official website of the Malaysian Ministry of Finance. Find the latest budget information, press releases, and publications.",
			Inputs: []domain.WebsiteInput{},
		},
		IsMalicious: false,
		Explanation: "This is safe. 'mof.gov.my' is the official website for the Ministry of Finance. It provides information and does not ask for unnecessary personal details.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "http://my-census-update.net/form",
			Title: "Mandatory Census Update",
			Body:  "URGENT: All citizens are required to update their census data due to new regulations. Failure to comply may result in a fine. Click here to update now.",
			Inputs: []domain.WebsiteInput{
				{Label: "Full Address", Placeholder: "Your Address"},
				{Label: "Household Income", Placeholder: "e.g., 5000"},
			},
		},
		IsMalicious: true,
		Explanation: "This is highly suspicious. The URL is not secure (http instead of https), it's not a '.gov.my' domain, and it uses threats (a fine) to create urgency. Official census data is collected through secure, official channels.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "https://www.epf.gov.my",
			Title: "KWSP / EPF Official Website",
			Body:  "Welcome to the Employees Provident Fund official website. Log in to check your statement and manage your account.",
			Inputs: []domain.WebsiteInput{
				{Label: "User ID", Placeholder: "Your ID"},
				{Label: "Password", Placeholder: "Password"},
			},
		},
		IsMalicious: false,
		Explanation: "This is safe. 'epf.gov.my' is the correct and official domain for the EPF/KWSP.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:   "https://my-passport-renewal.com",
			Title: "Online Passport Renewal",
			Body:  "Renew your passport from the comfort of your home. Fast and easy. Enter all your details to begin.",
			Inputs: []domain.WebsiteInput{
				{Label: "Full Name", Placeholder: "Your Name"},
				{Label: "IC Number", Placeholder: "e.g., 900101-10-1234"},
				{Label: "Credit Card", Placeholder: "**** **** **** ****"},
			},
		},
		IsMalicious: true,
		Explanation: "This is suspicious. While online passport renewal exists, it's done through the official immigration department website (imi.gov.my). A '.com' address for this service is a major red flag.",
	},
	{
		Kind: domain.KindFakeGovWebsite,
		GovWebsite: &domain.GovWebsite{
			URL:    "https://www.moh.gov.my",
			Title:  "Ministry of Health Malaysia",
			Body:   "The official source for health information, public health announcements, and healthcare policies in Malaysia.",
			Inputs: []domain.WebsiteInput{},
		},
		IsMalicious: false,
		Explanation: "This is safe. 'moh.gov.my' is the official website for the Ministry of Health.",
	},
}

var socialPool = []domain.Scenario{
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Instagram",
			ProfileName:    "CruiseDeals_Official",
			ProfileImageID: "social-profile-cruise",
			ImageID:        "social-post-cruise",
			Text:           "You've been selected for a FREE 7-day Caribbean cruise! To claim your prize, click the link in our bio and enter your details. Limited spots available, act fast!",
		},
		IsMalicious: true,
		Explanation: "This is a classic scam. 'Too good to be true' offers, pressure to act fast, and requests for personal information are major red flags. The link likely leads to a phishing site.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Facebook",
			ProfileName:    "National Geographic",
			ProfileImageID: "social-profile-natgeo",
			ImageID:        "social-post-nature",
			Text:           "Did you know? The axolotl can regenerate not just its limbs, but also its heart and parts of its brain! #FunFactFriday #NatureIsAmazing",
		},
		IsMalicious: false,
		Explanation: "This is a safe post from a verified, reputable page. It shares an interesting fact and doesn't ask you to do anything suspicious.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Instagram DM",
			ProfileName:    "your_friend_anna",
			ProfileImageID: "social-profile-anna",
			Text:           "OMG I can't believe this photo of you! is-this-really-you.com/view-photo. Is this really you??",
		},
		IsMalicious: true,
		Explanation: "This is a common account takeover scam. A hacker has likely taken over your friend's account and is trying to trick you into clicking a malicious link, which could compromise your own account.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Facebook",
			ProfileName:    "John S.",
			ProfileImageID: "social-profile-john",
			ImageID:        "social-post-console",
			Text:           "Selling PS5, brand new. Price: $250. My cousin is in the hospital so I need money fast. I can't do pickup, but if you pay me upfront with a gift card, I can ship it to you today.",
		},
		IsMalicious: true,
		Explanation: "This has multiple red flags for a marketplace scam: a price that's too low, a sob story to create urgency, refusal of a safe transaction method, and a request for an untraceable payment method.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Facebook",
			ProfileName:    "Local Community Group",
			ProfileImageID: "social-profile-community",
			ImageID:        "social-post-lost-pet",
			Text:           "Found this sweet dog wandering near the park. No collar. Does anyone recognize her? Please share so we can find her owner!",
		},
		IsMalicious: false,
		Explanation: "This is a typical post in a community group. It's a genuine attempt to help and doesn't involve any red flags like asking for money or clicking strange links.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Instagram",
			ProfileName:    "Crypto_King_88",
			ProfileImageID: "social-profile-crypto",
			ImageID:        "social-post-chart",
			Text:           "I turned $100 into $10,000 in one week with my secret crypto strategy. DM me 'INFO' and I'll teach you how. Guaranteed profits!",
		},
		IsMalicious: true,
		Explanation: "This is an investment scam. Promises of 'guaranteed profits' and 'secret strategies' are major red flags. These scams aim to get you to send them money, which you'll never see again.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Facebook",
			ProfileName:    "Your Aunt Carol",
			ProfileImageID: "social-profile-aunt",
			Text:           "Hey sweetie, I'm in a bit of a jam and need to borrow $50 for groceries. Can you send it to me on this new payment app I'm trying? I'll pay you back on Friday!",
		},
		IsMalicious: true,
		Explanation: "Be careful! This could be a scammer who has hacked your aunt's account. The unusual request for money, especially using a 'new payment app', is suspicious. Always verify such requests by calling your relative directly.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Instagram",
			ProfileName:    "BakeWithLove",
			ProfileImageID: "social-profile-baker",
			ImageID:        "social-post-cake",
			Text:           "Just finished this custom birthday cake! So happy with how the chocolate drip turned out. What are you all baking this weekend? #baking #cakedecorating",
		},
		IsMalicious: false,
		Explanation: "This is a normal, safe post from a hobbyist or small business account. It's sharing content and engaging with its audience, which is what social media is for.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Facebook",
			ProfileName:    "Work From Home Jobs",
			ProfileImageID: "social-profile-recruiter",
			ImageID:        "social-post-job",
			Text:           "Easy remote job! Process payments from home. No experience needed. Earn $2000/week. We send you checks, you deposit them and send us a portion back via wire transfer. DM to start!",
		},
		IsMalicious: true,
		Explanation: "This is a check kiting or money mule scam. The checks they send are fake, and you will be responsible for the money you wire to them when the bank discovers the fraud.",
	},
	{
		Kind: domain.KindSocialMedia,
		Social: &domain.SocialPost{
			Platform:       "Instagram",
			ProfileName:    "YourFriendFromCollege",
			ProfileImageID: "social-profile-friend2",
			ImageID:        "social-post-vacation",
			Text:           "Had the most amazing time in Bali! Can't wait to go back. #travel #bali",
		},
		IsMalicious: false,
		Explanation: "This is a normal vacation post from a friend. There's nothing suspicious about it.",
	},
}
