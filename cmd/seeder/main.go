package main

import (
	"flag"
	"log"

	"github.com/kalyan0128/Humanlike-awarebot/internal/config"
	"github.com/kalyan0128/Humanlike-awarebot/internal/database"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/kalyan0128/Humanlike-awarebot/internal/seeds"
	"github.com/kalyan0128/Humanlike-awarebot/internal/storage"
	"gorm.io/gorm"
)

func main() {
	reset := flag.Bool("reset", false, "truncate content tables before seeding (users and progress are kept)")
	flag.Parse()

	config.LoadConfig()
	db := database.Connect()

	log.Println("🔄 Running migrations (just in case)...")
	if err := storage.New(db).Migrate(); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	if *reset {
		log.Println("🗑️  Clearing content tables (users and progress are kept)...")
		for _, m := range []interface{}{
			&models.TrainingModule{},
			&models.ThreatScenario{},
			&models.OrganizationPolicy{},
			&models.Achievement{},
		} {
			if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				log.Fatalf("❌ Failed to clear table for %T: %v", m, err)
			}
		}
	}

	if err := seeds.Run(db); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✅ Seeding complete")
}
