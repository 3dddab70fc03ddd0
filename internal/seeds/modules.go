package seeds

import (
	"log"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

func SeedTrainingModules(db *gorm.DB) error {
	log.Println("📚 Seeding Training Modules...")

	modules := []models.TrainingModule{
		{
			Title:       "Social Engineering Fundamentals",
			Description: "Understand the basic concepts and psychology behind social engineering attacks",
			Type:        models.ModuleTypeQuiz,
			Difficulty:  "beginner",
			XPReward:    15,
			Order:       1,
			Content: `# Social Engineering Fundamentals

## What is Social Engineering?
Social engineering is the art of manipulating people into performing actions or divulging confidential information. Unlike technical hacking, it relies on human interaction and often involves tricking people into breaking normal security procedures.

## The Psychology Behind Social Engineering
Social engineers exploit key human characteristics:
- Trust: Humans naturally tend to trust
- Fear: We react quickly to threats
- Helpfulness: The desire to assist others
- Respect for authority: Tendency to comply with requests from authority figures

## Quiz Section:
1. What is the primary focus of social engineering attacks?
   a) Exploiting software vulnerabilities
   b) Manipulating people
   c) Network penetration
   d) Password cracking

2. Which human trait do social engineers most commonly exploit?
   a) Intelligence
   b) Technical knowledge
   c) Trust
   d) Physical strength

3. Why are social engineering attacks often more effective than technical attacks?
   a) They're cheaper to execute
   b) The human element is often the weakest link in security
   c) They require less knowledge to perform
   d) They leave no digital evidence

Answers: 1-b, 2-c, 3-b`,
		},
		{
			Title:       "Basic Phishing Recognition",
			Description: "Learn to identify and avoid common phishing attempts",
			Type:        models.ModuleTypeQuiz,
			Difficulty:  "beginner",
			XPReward:    15,
			Order:       2,
			Content: `# Basic Phishing Recognition

## What is Phishing?
Phishing is a cybercrime where attackers disguise themselves as trustworthy entities to trick victims into revealing sensitive information such as passwords, credit card details, or personal data.

## Common Indicators of Phishing Emails:
- Urgent call to action
- Spelling and grammar errors
- Generic greeting (Dear User, Valued Customer)
- Suspicious or misspelled domain names
- Requests for sensitive information
- Unexpected attachments

## Real-World Example:
An email claiming to be from your bank states there's an "urgent security issue" with your account and you must "verify your information immediately" by clicking a provided link. The email contains subtle spelling errors and the sender's address is slightly different from your bank's actual domain.

## Quiz Section:
1. Which of these is a key indicator of a phishing email?
   a) It comes from someone you know
   b) It has a sense of urgency or threatening language
   c) It has the company's logo
   d) It has links to the company's public website

2. What should you do if you receive a suspicious email from your "bank"?
   a) Reply asking for clarification
   b) Call the bank directly using the number from their official website or your card
   c) Click the link to check if it looks legitimate
   d) Forward it to colleagues to get their opinion

3. Which email address is most likely to be a phishing attempt?
   a) support@mybank.com
   b) customerservice@my-bank.com
   c) help@mybank-secure.net
   d) billing@mybank.customerservice.com

Answers: 1-b, 2-b, 3-d`,
		},
		{
			Title:       "Pretexting Defense Strategies",
			Description: "Recognize and counter pretexting attacks where attackers create fabricated scenarios",
			Type:        models.ModuleTypeQuiz,
			Difficulty:  "beginner",
			XPReward:    20,
			Order:       3,
			Content: `# Pretexting Defense Strategies

## What is Pretexting?
Pretexting is a form of social engineering where attackers create an invented scenario (the pretext) to engage a victim and get them to divulge information or perform actions.

## Common Pretexting Scenarios:
- Impersonating coworkers, IT staff, or executives
- Posing as vendors, service providers, or contractors
- Claiming to be conducting surveys or research
- Pretending to be new employees who need help

## Defensive Strategies:
- Verify identity through official channels before sharing sensitive information
- Be aware of unusual requests, especially those involving credentials or financial information
- Follow established verification procedures, even when under pressure
- Report suspicious interactions to your security team

## Interactive Scenario:
You receive a call from someone claiming to be from IT support who needs your password to install important updates. They sound professional and mention your department head by name.

## Quiz Section:
1. What is the appropriate response in this scenario?
   a) Provide your password since they know your department head
   b) Ask for their employee ID and call them back on the official IT support line
   c) Give them a temporary password and change it later
   d) Ask them to have your department head contact you directly

2. Which of the following is NOT a legitimate reason for someone to ask for your password?
   a) To help troubleshoot a technical issue
   b) To install software updates
   c) To verify your account
   d) None of these are legitimate reasons to share your password

3. What information should you always verify before engaging with an unexpected caller requesting information?
   a) Their job title and reason for calling
   b) Their knowledge of company structure
   c) Their identity through an independent channel
   d) Their technical expertise

Answers: 1-b, 2-d, 3-c`,
		},
		{
			Title:       "Recognizing Social Engineering Red Flags",
			Description: "Learn the warning signs of potential social engineering attacks",
			Type:        models.ModuleTypeVideo,
			Difficulty:  "beginner",
			XPReward:    20,
			Order:       4,
			Content: `# Recognizing Social Engineering Red Flags

## Common Red Flags in Communications:
- Creating urgency or fear ("Act now or your account will be closed")
- Requests for sensitive information like passwords or credit card details
- Offers that seem too good to be true
- Unknown or unexpected attachments
- Links to websites that don't match the official domain
- Messages containing unusual errors or inconsistencies

## Workplace Red Flags:
- Unauthorized or unfamiliar visitors in restricted areas
- People asking detailed questions about internal processes
- Requests that bypass normal security procedures
- Unsolicited packages or USB drives

## Video Demonstration: [Social Engineering Red Flags]
This section includes a video showing examples of red flags in various communications and situations.

## Key Takeaway
When a request is unusual, urgent, or asks you to bypass procedure, stop and verify through an independent channel before acting.`,
		},
		{
			Title:       "Password Security Best Practices",
			Description: "Learn to create strong passwords and manage them securely",
			Type:        models.ModuleTypeQuiz,
			Difficulty:  "beginner",
			XPReward:    15,
			Order:       5,
			Content: `# Password Security Best Practices

## Why Password Security Matters
Passwords remain the first line of defense for most accounts. Weak or reused passwords are the easiest way for an attacker to move from one compromised service into your work accounts.

## Creating Strong Passwords:
- Use at least 12 characters
- Prefer passphrases made of unrelated words
- Avoid personal information (birthdays, pet names, favorite teams)
- Never reuse a password between services

## Managing Passwords:
- Use a reputable password manager
- Enable multi-factor authentication everywhere it is offered
- Never share passwords, not even with IT support
- Change a password immediately if you suspect compromise

## Quiz Section:
1. Which of these is the strongest password?
   a) Summer2024!
   b) correct-horse-battery-staple-9
   c) P@ssw0rd
   d) Your pet's name plus your birth year

2. Who is it acceptable to share your work password with?
   a) Your manager
   b) IT support during troubleshooting
   c) A trusted coworker covering your shift
   d) No one

Answers: 1-b, 2-d`,
		},
		{
			Title:       "Email Security and Awareness",
			Description: "Master techniques to identify and avoid email-based threats",
			Type:        models.ModuleTypeScenario,
			Difficulty:  "intermediate",
			XPReward:    25,
			Order:       6,
			Content: `# Email Security and Awareness

## Interactive Scenario
You receive three emails this morning:

1. An invoice from a known vendor, but the bank account number has changed
2. A calendar invite from your CEO titled "Quick call - urgent" with an external dial-in link
3. A password-reset confirmation for a service you never signed up for

## How to Handle Each:
1. Call the vendor on the number you have on file, never the one in the email, before paying
2. Verify through your normal chat or phone channel; executives are favorite targets to impersonate
3. Do not click anything; report it, since it may mean your address is being used in account-creation fraud

## General Email Hygiene:
- Hover over links before clicking to inspect the real destination
- Treat attachments from unknown senders as hostile
- Report suspicious messages to the security team instead of deleting them silently
- When in doubt, verify out-of-band`,
		},
		{
			Title:       "Social Media Safety",
			Description: "Protect your personal and professional information on social platforms",
			Type:        models.ModuleTypeQuiz,
			Difficulty:  "intermediate",
			XPReward:    20,
			Order:       7,
			Content: `# Social Media Safety

## What Attackers Learn From Your Profile
Social engineers mine public profiles for material to make their pretexts convincing: your role, your coworkers, your travel plans, even the badge visible in a photo.

## Safe Practices:
- Review privacy settings regularly
- Avoid posting your work location, schedule, or badge
- Be suspicious of connection requests from people you have not met
- Never discuss internal projects or systems publicly

## Quiz Section:
1. Which piece of information is most useful to an attacker building a pretext?
   a) Your favorite movie
   b) The name of your manager and your current project
   c) Your profile picture
   d) The number of connections you have

2. You receive a connection request from a recruiter you don't know who immediately asks about the systems you work with. You should:
   a) Answer, it's just small talk
   b) Decline and report the profile
   c) Accept and ignore the question
   d) Forward your CV

Answers: 1-b, 2-b`,
		},
		{
			Title:       "Physical Security Awareness",
			Description: "Learn about physical aspects of security that complement cybersecurity",
			Type:        models.ModuleTypeScenario,
			Difficulty:  "intermediate",
			XPReward:    25,
			Order:       8,
			Content: `# Physical Security Awareness

## Interactive Scenario
A person in a delivery uniform, arms full of boxes, asks you to hold the secure door. Your badge policy says every entry must be badged individually.

## The Right Response
Offer to hold the boxes while they badge in, or direct them to reception. Tailgating exploits courtesy; the polite option that preserves security always exists.

## Other Physical Vectors:
- Shoulder surfing in public spaces and on transport
- Documents left on desks or printers
- Unlocked, unattended screens
- USB drives "dropped" in the parking lot

## Habits That Close Them:
- Lock your screen every time you stand up
- Use a privacy filter when working in public
- Follow a clean desk routine
- Hand found media to security, never plug it in`,
		},
		{
			Title:       "Mobile Device Security",
			Description: "Protect sensitive information on smartphones and tablets",
			Type:        models.ModuleTypeQuiz,
			Difficulty:  "intermediate",
			XPReward:    20,
			Order:       9,
			Content: `# Mobile Device Security

## Mobile-Specific Threats:
- Smishing: phishing over SMS, often with package-delivery or bank pretexts
- Malicious apps requesting excessive permissions
- Rogue public charging stations ("juice jacking")
- Device theft with unlocked screens

## Protective Measures:
- Keep the OS and apps updated
- Install apps only from official stores and review their permissions
- Use biometric or strong PIN lock with a short auto-lock timeout
- Carry your own charger and power bank; avoid unknown USB ports
- Enable remote wipe for any device holding work data

## Quiz Section:
1. A text from an unknown number says your package is held and links to a payment page. You should:
   a) Pay the small fee, it's only a dollar
   b) Delete and report the message as smishing
   c) Reply STOP
   d) Open the link to check the tracking number

Answers: 1-b`,
		},
		{
			Title:       "Vishing (Voice Phishing) Prevention",
			Description: "Identify and respond to phone-based social engineering attacks",
			Type:        models.ModuleTypeVideo,
			Difficulty:  "intermediate",
			XPReward:    30,
			Order:       10,
			Content: `# Vishing (Voice Phishing) Prevention

## Why Voice Works
A live caller can apply pressure, improvise, and exploit emotion in ways an email cannot. Caller ID is trivially spoofed, so the number on screen proves nothing.

## Classic Vishing Pretexts:
- "IT support" needing your password or a remote-access install
- "The bank" confirming a fraudulent transaction and asking for your card details
- "A government agency" threatening penalties unless you act now
- "An executive" needing gift cards or an urgent wire transfer

## Video Demonstration: [Anatomy of a Vishing Call]
This section includes recordings of real vishing techniques: urgency, authority, and the manufactured background noise of a call center.

## Your Defense Script
1. Take the caller's name and claimed organization
2. Hang up
3. Call back using a number from the official website or your records
4. Report the attempt to your security team`,
		},
	}

	for i := range modules {
		if err := db.Create(&modules[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d training modules", len(modules))
	return nil
}
