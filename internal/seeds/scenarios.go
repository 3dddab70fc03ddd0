package seeds

import (
	"log"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

func SeedThreatScenarios(db *gorm.DB) error {
	log.Println("⚠️  Seeding Threat Scenarios...")

	scenarios := []models.ThreatScenario{
		{
			Title:       "Vendor Impersonation Attack",
			Description: "Attackers impersonate trusted vendors requesting urgent system access or invoice payments.",
			Difficulty:  "intermediate",
			IsNew:       true,
			IsTrending:  false,
			Content: `# Vendor Impersonation Attack

## Scenario Description
A sophisticated attacker has researched your organization and identified one of your main IT vendors. They create emails that appear to come from this vendor, including the correct logo, formatting, and even employee names. The email claims there's an urgent software update that requires immediate access to your systems, or it may contain an invoice that appears slightly different from the usual format.

## Risk Factors
- Established vendor relationships create inherent trust
- Urgency tactics pressure quick decisions
- Familiarity with vendor communications makes anomalies harder to spot
- Financial or access privileges are significant targets

## Defense Strategies
1. Implement verification procedures for all vendor requests, especially those involving system access or payments
2. Train employees to recognize subtle differences in communication patterns
3. Establish dedicated channels for vendor payment or access changes
4. Verify all unexpected invoices or access requests through official vendor contact information, not what's provided in the suspicious communication`,
		},
		{
			Title:       "Executive Whaling Attack",
			Description: "Sophisticated phishing attacks targeting C-level executives for financial gain or data theft.",
			Difficulty:  "advanced",
			IsNew:       false,
			IsTrending:  true,
			Content: `# Executive Whaling Attack

## Scenario Description
Cybercriminals meticulously research high-value executives before crafting personalized phishing campaigns. They may monitor an executive's travel schedule, speaking engagements, or social media presence to create extremely convincing scenarios. The goal is typically financial gain (wire transfers, gift cards) or access to sensitive corporate information.

## Risk Factors
- Executives hold broad access and financial authority
- Public visibility provides rich material for personalization
- Assistants acting on an executive's behalf can be targeted in parallel
- Time pressure and travel reduce scrutiny of requests

## Defense Strategies
1. Require out-of-band confirmation for any financial request, regardless of apparent sender
2. Brief executives and assistants on targeted attack patterns
3. Limit publicly available details of schedules and internal structure
4. Flag external email that spoofs internal display names`,
		},
		{
			Title:       "HR Benefits Portal Phishing",
			Description: "Attackers exploit HR processes to steal credentials and personal information.",
			Difficulty:  "intermediate",
			IsNew:       true,
			IsTrending:  true,
			Content: `# HR Benefits Portal Phishing

## Scenario Description
During enrollment season, employees receive an email announcing changes to their benefits that requires logging into a portal "before the deadline". The linked site is a pixel-perfect clone of the real HR system and harvests corporate credentials.

## Risk Factors
- Seasonal timing matches legitimate HR communication
- Benefits touch money and family, creating urgency
- HR portals often share credentials with corporate SSO

## Defense Strategies
1. Navigate to HR systems via bookmarks, never via email links
2. Check the domain carefully before entering credentials
3. Enable MFA on all SSO-connected services
4. Report unexpected benefits deadlines to HR through the intranet`,
		},
		{
			Title:       "Remote Work Support Scam",
			Description: "Attackers exploit remote work arrangements to gain system access.",
			Difficulty:  "beginner",
			IsNew:       true,
			IsTrending:  true,
			Content: `# Remote Work Support Scam

## Scenario Description
A remote employee receives a call from "IT support" about VPN problems reported on their account. The caller walks them through installing a remote-assistance tool, which hands the attacker full control of the workstation.

## Risk Factors
- Remote workers cannot walk over to the IT desk to verify
- Home setups blur the line between personal and corporate support
- VPN and connectivity issues are common enough to be believable

## Defense Strategies
1. Real IT support will never cold-call asking to install software
2. Verify any support contact through the official helpdesk ticket system
3. Never grant remote access initiated by an inbound call
4. Report the call, the number, and the requested tool to security`,
		},
		{
			Title:       "QR Code Phishing",
			Description: "Attackers use malicious QR codes to direct victims to fraudulent websites.",
			Difficulty:  "beginner",
			IsNew:       true,
			IsTrending:  false,
			Content: `# QR Code Phishing

## Scenario Description
Stickers with QR codes appear in the office parking garage offering "discounted employee parking". Scanning leads to a convincing payment page that captures card details. Variants appear on restaurant tables, posters, and even over legitimate codes.

## Risk Factors
- QR codes hide their destination URL completely
- Physical placement lends false legitimacy
- Mobile browsers show truncated addresses

## Defense Strategies
1. Preview the decoded URL before opening where your camera app allows it
2. Be suspicious of codes in public places, especially stickers placed over others
3. Type known addresses manually for anything involving payment
4. Report suspicious codes found on company premises`,
		},
		{
			Title:       "Voice Deepfake Financial Fraud",
			Description: "AI-generated voices impersonate executives to authorize fraudulent transactions.",
			Difficulty:  "advanced",
			IsNew:       true,
			IsTrending:  true,
			Content: `# Voice Deepfake Financial Fraud

## Scenario Description
A finance manager receives a voicemail that sounds exactly like the CFO, authorizing an urgent confidential acquisition payment. The voice was synthesized from minutes of conference-talk audio available online.

## Risk Factors
- Voice is no longer proof of identity
- Confidentiality framing discourages verification
- Urgency plus authority is a powerful combination

## Defense Strategies
1. Treat voice authorization alone as insufficient for any payment
2. Use agreed callback procedures and known numbers
3. Establish code words or secondary verification for high-value transfers
4. Slow down: legitimate urgent payments survive a fifteen-minute verification`,
		},
		{
			Title:       "Tech Support Scam",
			Description: "Fake support pop-ups and calls trick users into granting access or paying for bogus services.",
			Difficulty:  "beginner",
			IsNew:       false,
			IsTrending:  false,
			Content: `# Tech Support Scam

## Scenario Description
A full-screen browser pop-up flashes virus warnings and a toll-free "Microsoft support" number. The operator asks for remote access to "clean" the machine, then charges for the service, installs malware, or both.

## Risk Factors
- Alarming visuals and audio create panic
- Brand names lend credibility
- Less technical users are deliberately targeted

## Defense Strategies
1. Real security warnings never include phone numbers
2. Close the browser (force-quit if needed), don't call
3. Never grant remote access to an inbound caller
4. Report incidents so IT can block the domains involved`,
		},
		{
			Title:       "Deepfake Video Conference Scam",
			Description: "Attackers join video calls as synthetic recreations of known colleagues.",
			Difficulty:  "advanced",
			IsNew:       false,
			IsTrending:  true,
			Content: `# Deepfake Video Conference Scam

## Scenario Description
An employee is invited to a video call where the CFO and two colleagues instruct them to execute several transfers. Every other participant on the call is a real-time deepfake; the lone human is the victim.

## Risk Factors
- Seeing familiar faces on video defeats instinctive suspicion
- Group pressure normalizes the request
- Meeting invites from compromised calendars look legitimate

## Defense Strategies
1. Verify unusual instructions through a separately initiated channel, even after a video call
2. Watch for unnatural motion, lighting, or audio sync
3. Apply payment controls that no single meeting can override
4. Treat surprise meetings about confidential transfers as hostile until verified`,
		},
	}

	for i := range scenarios {
		if err := db.Create(&scenarios[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d threat scenarios", len(scenarios))
	return nil
}
