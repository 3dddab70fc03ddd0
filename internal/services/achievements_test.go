package services

import (
	"testing"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/kalyan0128/Humanlike-awarebot/internal/storage"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestStorage(t *testing.T) *storage.Storage {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test DB: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	st := storage.New(db)
	if err := st.Migrate(); err != nil {
		t.Fatalf("Failed to migrate test DB: %v", err)
	}
	return st
}

func seedAchievements(t *testing.T, st *storage.Storage) {
	t.Helper()
	catalog := []models.Achievement{
		{Title: "First Steps", Description: "Complete your first module", Icon: "award", RequiredXP: 10},
		{Title: "Getting There", Description: "Reach 50 XP", Icon: "trending-up", RequiredXP: 50},
		{Title: "Security Pro", Description: "Reach 200 XP", Icon: "shield", RequiredXP: 200},
	}
	for i := range catalog {
		if err := st.DB().Create(&catalog[i]).Error; err != nil {
			t.Fatalf("Failed to seed achievement: %v", err)
		}
	}
}

func TestCheckAchievements_AwardsByThreshold(t *testing.T) {
	st := newTestStorage(t)
	seedAchievements(t, st)

	user := models.User{Username: "alice", Email: "alice@example.com", Password: "x", FirstName: "A", LastName: "B"}
	assert.NoError(t, st.CreateUser(&user))
	assert.NoError(t, st.DB().Model(&user).Update("xp_points", 60).Error)

	earned, err := CheckAchievements(st, user.ID)

	assert.NoError(t, err)
	assert.Len(t, earned, 2)
	assert.Equal(t, "First Steps", earned[0].Title)
	assert.Equal(t, "Getting There", earned[1].Title)
}

func TestCheckAchievements_AwardsOnlyOnce(t *testing.T) {
	st := newTestStorage(t)
	seedAchievements(t, st)

	user := models.User{Username: "bob", Email: "bob@example.com", Password: "x", FirstName: "A", LastName: "B"}
	assert.NoError(t, st.CreateUser(&user))
	assert.NoError(t, st.DB().Model(&user).Update("xp_points", 250).Error)

	first, err := CheckAchievements(st, user.ID)
	assert.NoError(t, err)
	assert.Len(t, first, 3)

	second, err := CheckAchievements(st, user.ID)
	assert.NoError(t, err)
	assert.Empty(t, second)

	held, err := st.ListUserAchievements(user.ID)
	assert.NoError(t, err)
	assert.Len(t, held, 3)
}

func TestCheckAchievements_NothingBelowThreshold(t *testing.T) {
	st := newTestStorage(t)
	seedAchievements(t, st)

	user := models.User{Username: "carol", Email: "carol@example.com", Password: "x", FirstName: "A", LastName: "B"}
	assert.NoError(t, st.CreateUser(&user))

	earned, err := CheckAchievements(st, user.ID)

	assert.NoError(t, err)
	assert.Empty(t, earned)
}

func TestCheckAchievements_UnknownUser(t *testing.T) {
	st := newTestStorage(t)

	_, err := CheckAchievements(st, 404)

	assert.Error(t, err)
}
