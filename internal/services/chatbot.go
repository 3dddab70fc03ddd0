package services

import "strings"

// chatRule pairs a keyword phrase with its canned response. Rules live in a
// slice, not a map: matching walks them in declaration order so the first
// hit is always the same one.
type chatRule struct {
	Keyword  string
	Response string
}

// Chatbot answers free-text questions about social engineering with
// case-insensitive substring matching against a fixed rule table. Stateless
// and deterministic; the "AI" in the UI copy is marketing.
type Chatbot struct {
	rules    []chatRule
	fallback string
}

func NewChatbot() *Chatbot {
	return &Chatbot{rules: awarenessRules, fallback: fallbackResponse}
}

// Respond returns the response of the first rule whose keyword appears in
// the lowercased message, or the fallback when nothing matches.
func (b *Chatbot) Respond(message string) string {
	normalized := strings.ToLower(message)
	for _, rule := range b.rules {
		if strings.Contains(normalized, rule.Keyword) {
			return rule.Response
		}
	}
	return b.fallback
}

const fallbackResponse = "I'm here to help with questions about social engineering. You can ask about phishing, pretexting, prevention methods, or other related topics to increase your awareness of these security threats. If you need suggestions, try asking 'What is social engineering?' or 'How can I prevent social engineering attacks?'"

var awarenessRules = []chatRule{
	{
		Keyword:  "what is social engineering",
		Response: "Social engineering is the psychological manipulation of people into performing actions or divulging confidential information. It's a type of security attack that relies on human interaction rather than technical hacking techniques. Common types include phishing, pretexting, baiting, quid pro quo, and tailgating.",
	},
	{
		Keyword:  "what is phishing",
		Response: "Phishing is a type of social engineering attack where attackers attempt to steal sensitive information by disguising themselves as trustworthy entities in electronic communications. Typically, victims receive an email or message that appears to be from a legitimate organization, prompting them to provide sensitive data.",
	},
	{
		Keyword:  "how can i prevent social engineering attacks",
		Response: "To prevent social engineering attacks: 1) Verify identities using trusted channels, 2) Be skeptical of urgent requests, 3) Don't share sensitive information unless absolutely necessary, 4) Use multi-factor authentication, 5) Keep software updated, 6) Report suspicious communications, 7) Attend regular security awareness training.",
	},
	{
		Keyword:  "what are common signs of phishing",
		Response: "Common signs of phishing include: 1) Urgency or threatening language, 2) Grammatical errors or poor spelling, 3) Mismatched or suspicious URLs, 4) Requests for sensitive information, 5) Generic greetings instead of personalized ones, 6) Suspicious attachments, 7) Offers that seem too good to be true.",
	},
	{
		Keyword:  "what is pretexting",
		Response: "Pretexting is a type of social engineering where an attacker creates a fabricated scenario (pretext) to engage a victim and gain their trust. The attacker usually impersonates someone in authority or a trusted entity to extract information or influence behavior. For example, they might pose as a bank representative, IT support, or coworker.",
	},
	{
		Keyword:  "what is baiting",
		Response: "Baiting is a social engineering attack that uses a false promise to pique a victim's curiosity or greed, enticing them to take the bait. This could be in the form of free music or movie downloads, or even physical items like USB drives left in public places that contain malware.",
	},
	{
		Keyword:  "what is quid pro quo",
		Response: "Quid pro quo attacks involve an attacker requesting information or access in exchange for something. For example, an attacker might pose as IT support and call random employees offering assistance, in exchange for the employee providing their login credentials or disabling security measures.",
	},
	{
		Keyword:  "what is tailgating",
		Response: "Tailgating (also called piggybacking) is a physical social engineering attack where an unauthorized person follows an authorized person into a restricted area. The attacker might pretend to have forgotten their access card and ask someone to hold the door, exploiting human courtesy.",
	},
	{
		Keyword:  "what is spear phishing",
		Response: "Spear phishing is a targeted form of phishing where attackers customize their approach for specific individuals or organizations. They research their targets and craft highly personalized messages, often impersonating trusted contacts, making these attacks more convincing and harder to detect than general phishing attempts.",
	},
	{
		Keyword:  "what is whaling",
		Response: "Whaling is a type of spear phishing that specifically targets high-profile executives or other high-value targets within an organization. These attacks aim to steal sensitive information or initiate fraudulent financial transactions. They're called 'whaling' because they go after the 'big fish' in an organization.",
	},
	{
		Keyword:  "what is vishing",
		Response: "Vishing (voice phishing) is a social engineering attack using phone calls to trick victims into revealing personal information, financial details, or credentials. Attackers often spoof caller ID to appear legitimate and create scenarios requiring urgent action to bypass the victim's normal caution.",
	},
	{
		Keyword:  "what is smishing",
		Response: "Smishing (SMS phishing) is a social engineering attack that uses text messages to trick recipients into taking actions that compromise their security. These messages often contain links to malicious websites or prompt users to call fraudulent numbers where they're asked to provide sensitive information.",
	},
	{
		Keyword:  "what are the signs of a phishing email",
		Response: "Signs of a phishing email include: 1) Generic greetings instead of your name, 2) Poor grammar or spelling errors, 3) Urgent requests for action, 4) Suspicious or mismatched sender addresses, 5) Links that don't match the legitimate website when you hover over them, 6) Unexpected attachments, 7) Requests for personal information, and 8) Offers that seem too good to be true.",
	},
	{
		Keyword:  "what is social engineering awareness training",
		Response: "Social engineering awareness training educates employees about different social engineering tactics and how to recognize and respond to them. It typically includes simulated attacks, case studies, best practices, and reporting procedures. Regular training helps organizations build a human firewall against these psychological manipulation attempts.",
	},
	{
		Keyword:  "what to do if i suspect a social engineering attack",
		Response: "If you suspect a social engineering attack: 1) Don't provide any information or take requested actions, 2) Stay calm and don't feel pressured, 3) Verify the request through official channels (not using contact details provided in the suspicious message), 4) Report the incident to your IT security team immediately, 5) Document the interaction, and 6) If you've already responded, change any compromised credentials immediately.",
	},
	{
		Keyword:  "what is a security policy",
		Response: "A security policy is a document that outlines an organization's rules, guidelines and practices for maintaining security. It typically includes acceptable use policies, password requirements, data handling procedures, incident response protocols, and social engineering awareness guidelines. These policies help protect organizational assets and provide a framework for security decision-making.",
	},
	{
		Keyword:  "what is multi-factor authentication",
		Response: "Multi-factor authentication (MFA) is a security method that requires users to provide two or more verification factors to gain access to a resource. These factors typically include something you know (password), something you have (security token or mobile device), and something you are (biometric verification). MFA significantly reduces the risk of unauthorized access even if credentials are compromised through social engineering.",
	},
	{
		Keyword:  "help",
		Response: "I can provide information about various social engineering topics. Try asking about specific types of attacks (phishing, pretexting, baiting, etc.), prevention methods, how to identify attacks, or what to do if you suspect you're being targeted. I'm here to help increase your awareness of social engineering threats!",
	},
	{
		Keyword:  "hello",
		Response: "Hello! I'm HumanLike-AwareBot, your social engineering awareness assistant. I can help you learn about various social engineering tactics, prevention methods, and security best practices. What would you like to know about today?",
	},
	{
		Keyword:  "hi",
		Response: "Hi there! I'm HumanLike-AwareBot, your guide to understanding and defending against social engineering attacks. Feel free to ask me about specific attack types, warning signs, or protection strategies. How can I assist you today?",
	},
}
