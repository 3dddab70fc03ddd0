package seeds

import (
	"log"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

func SeedAchievements(db *gorm.DB) error {
	log.Println("🏆 Seeding Achievements...")

	achievements := []models.Achievement{
		{Title: "Perfect Quiz Score", Description: "Achieved 100% on a quiz", Icon: "quiz", RequiredXP: 30},
		{Title: "Phishing Expert", Description: "Completed all phishing-related modules", Icon: "fishing", RequiredXP: 50},
		{Title: "Password Master", Description: "Completed password security training with perfect score", Icon: "key", RequiredXP: 60},
		{Title: "Quick Responder", Description: "Correctly followed incident response procedures in simulations", Icon: "bell", RequiredXP: 70},
		{Title: "Fast Learner", Description: "Completed 5 modules in a week", Icon: "speed", RequiredXP: 75},
		{Title: "Email Guardian", Description: "Successfully identified all phishing attempts in simulations", Icon: "envelope", RequiredXP: 80},
		{Title: "Social Media Savvy", Description: "Completed all social media security training modules", Icon: "share", RequiredXP: 85},
		{Title: "Mobile Security Specialist", Description: "Mastered all mobile security training modules", Icon: "mobile", RequiredXP: 90},
		{Title: "Physical Security Expert", Description: "Mastered all physical security awareness modules", Icon: "lock", RequiredXP: 95},
		{Title: "Security Fundamentals", Description: "Completed all beginner-level training modules", Icon: "shield", RequiredXP: 100},
		{Title: "Social Engineering Defender", Description: "Completed all modules related to social engineering defense", Icon: "user-shield", RequiredXP: 120},
		{Title: "Consistency Champion", Description: "Completed training sessions for 30 consecutive days", Icon: "calendar", RequiredXP: 120},
		{Title: "Digital Investigator", Description: "Successfully identified all red flags in simulation exercises", Icon: "magnifying-glass", RequiredXP: 150},
		{Title: "Security Champion", Description: "Reached intermediate level in all security categories", Icon: "trophy", RequiredXP: 200},
		{Title: "Security Leader", Description: "Reached advanced level and completed all training modules", Icon: "crown", RequiredXP: 250},
	}

	for i := range achievements {
		if err := db.Create(&achievements[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d achievements", len(achievements))
	return nil
}
