package seeds

import (
	"log"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

func SeedOrganizationPolicies(db *gorm.DB) error {
	log.Println("📋 Seeding Organization Policies...")

	policies := []models.OrganizationPolicy{
		{
			Title:       "Data Classification Policy",
			Description: "Guidelines for classifying and handling sensitive information",
			Category:    "data-security",
			Content: `# Data Classification Policy

## Purpose
This policy establishes the framework for classifying organizational data based on its sensitivity and criticality, ensuring appropriate handling, protection, and compliance with regulations.

## Data Classification Categories

### Public Data
Information that can be freely disclosed: marketing materials, public financial reports, job postings. No restrictions on distribution.

### Internal Data
Non-sensitive information meant for internal use only: directories, organizational charts. May be shared within the organization but not externally without approval.

### Confidential Data
Sensitive information requiring protection: strategic plans, product development information, contracts. Access on a need-to-know basis, encryption in storage and transit.

### Restricted Data
Highly sensitive information: customer PII, payment card data, health information, credentials. Strict access controls, encryption at rest and in transit, full audit trails.

## Responsibilities
- All employees: handle data according to its classification
- Data owners: assign classification to data under their purview
- IT Department: implement technical controls
- Security Team: monitor compliance and investigate violations

## Policy Violations
Violations may result in disciplinary action up to and including termination of employment or contract.`,
		},
		{
			Title:       "Email Security Guidelines",
			Description: "Procedures for secure email communication",
			Category:    "communication",
			Content: `# Email Security Guidelines

## Purpose
These guidelines establish requirements for the proper use of organizational email systems to protect against unauthorized access, data leakage, and social engineering attacks.

## Security Practices
- Create strong, unique passwords for email accounts
- Enable multi-factor authentication when available
- Report suspicious emails to the IT Security team
- Do not open attachments or click links from unknown or unexpected sources
- Verify the identity of the sender before responding to requests for sensitive information

## Handling Sensitive Information
- Encrypt emails containing sensitive or restricted information
- Verify recipient addresses before sending sensitive content
- Do not forward internal communications externally without authorization

## Phishing Awareness
- Be suspicious of unexpected emails, especially those creating urgency
- Verify unusual requests from colleagues or executives through a secondary channel
- Hover over links to verify destination URLs before clicking
- Report suspected phishing attempts immediately

## Remote Access
- Use secure connections (VPN) when accessing email from public networks
- Avoid configuring automatic forwarding to personal accounts
- Report lost or stolen devices with email access immediately`,
		},
		{
			Title:       "Incident Reporting Protocol",
			Description: "Steps to report security incidents",
			Category:    "incident-response",
			Content: `# Incident Reporting Protocol

## Purpose
This protocol establishes a structured process for reporting security incidents to ensure timely response, appropriate escalation, and consistent handling.

## What to Report
- Suspected or confirmed data breaches
- Unauthorized access to systems or facilities
- Phishing, vishing, or other social engineering attempts
- Lost or stolen devices containing organizational data
- Suspicious behavior in or around restricted areas

## How to Report
1. Contact the Security Operations team via the incident hotline or the intranet reporting form
2. Provide what happened, when, what systems or data are involved, and any evidence
3. Preserve evidence: do not delete messages, wipe devices, or "fix" anything yourself
4. Do not discuss the incident outside the response process

## Response Expectations
Reports are acknowledged within one hour during business hours. There are no penalties for good-faith reports, including ones that turn out to be false alarms — late reporting is the only failure mode.`,
		},
		{
			Title:       "Acceptable Use Policy",
			Description: "Rules governing the use of organizational systems and resources",
			Category:    "acceptable-use",
			Content: `# Acceptable Use Policy

## Purpose
Defines acceptable use of organizational computing resources, networks, and data by employees, contractors, and guests.

## General Use
- Systems are provided for business purposes; limited personal use is permitted where it does not interfere with work or violate policy
- Users must not attempt to bypass security controls or access data beyond their authorization
- Software may only be installed from the approved catalog

## Prohibited Activities
- Sharing credentials or authentication tokens
- Connecting unauthorized devices to the corporate network
- Transmitting confidential data through unapproved channels
- Disabling endpoint protection or logging agents

## Monitoring
Use of organizational systems may be logged and reviewed in accordance with local regulations.

## Enforcement
Violations may result in loss of access and disciplinary action.`,
		},
		{
			Title:       "Password Management Policy",
			Description: "Requirements for creating and maintaining credentials",
			Category:    "access-control",
			Content: `# Password Management Policy

## Requirements
- Minimum 12 characters for all passwords; passphrases encouraged
- Unique password per system — reuse across services is prohibited
- Multi-factor authentication is mandatory for remote access, email, and administrative accounts
- Default and vendor-supplied passwords must be changed before deployment

## Storage and Sharing
- Use the approved password manager for all workplace credentials
- Passwords must never be written down, emailed, or shared — IT will never ask for your password
- Service-account credentials are stored only in the secrets management system

## Compromise Response
If a credential may have been exposed, change it immediately and report the event under the Incident Reporting Protocol.`,
		},
		{
			Title:       "Bring Your Own Device (BYOD) Policy",
			Description: "Security requirements for personal devices accessing organizational data",
			Category:    "byod",
			Content: `# Bring Your Own Device (BYOD) Policy

## Eligibility
Personal smartphones and tablets may access organizational email and approved applications after enrollment in mobile device management (MDM).

## Device Requirements
- Current OS version with security updates applied
- Screen lock with biometric or strong PIN and short auto-lock timeout
- Device encryption enabled
- No jailbroken or rooted devices

## Organizational Rights
- The organization may enforce security settings and remotely wipe organizational data
- Personal data is not accessed or collected beyond what MDM enrollment requires

## User Responsibilities
- Report lost or stolen enrolled devices within 24 hours
- Do not store restricted data outside approved applications
- Remove organizational accounts before selling or disposing of a device`,
		},
	}

	for i := range policies {
		if err := db.Create(&policies[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d organization policies", len(policies))
	return nil
}
