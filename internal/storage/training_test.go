package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListTrainingModules_CurriculumOrder(t *testing.T) {
	st := newTestStorage(t)
	createTestModule(t, st, "Third", 3, 10)
	createTestModule(t, st, "First", 1, 10)
	createTestModule(t, st, "Second", 2, 10)

	modules, err := st.ListTrainingModules()

	assert.NoError(t, err)
	assert.Len(t, modules, 3)
	assert.Equal(t, "First", modules[0].Title)
	assert.Equal(t, "Second", modules[1].Title)
	assert.Equal(t, "Third", modules[2].Title)
}

func TestNextRecommendedModules_SkipsCompleted(t *testing.T) {
	st := newTestStorage(t)
	user := createTestUser(t, st, "alice")
	first := createTestModule(t, st, "First", 1, 10)
	createTestModule(t, st, "Second", 2, 10)
	createTestModule(t, st, "Third", 3, 10)

	_, err := st.RecordCompletion(user.ID, first.ID, true, nil)
	assert.NoError(t, err)

	recommended, err := st.NextRecommendedModules(user.ID, DefaultRecommendationLimit)

	assert.NoError(t, err)
	assert.Len(t, recommended, 2)
	assert.Equal(t, "Second", recommended[0].Title)
	assert.Equal(t, "Third", recommended[1].Title)
}

func TestNextRecommendedModules_Deterministic(t *testing.T) {
	st := newTestStorage(t)
	user := createTestUser(t, st, "bob")
	for i := 1; i <= 5; i++ {
		createTestModule(t, st, "Module", i, 10)
	}

	first, err := st.NextRecommendedModules(user.ID, 3)
	assert.NoError(t, err)
	second, err := st.NextRecommendedModules(user.ID, 3)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, 3)
}

func TestNextRecommendedModules_AllCompleted(t *testing.T) {
	st := newTestStorage(t)
	user := createTestUser(t, st, "carol")
	module := createTestModule(t, st, "Only", 1, 10)

	_, err := st.RecordCompletion(user.ID, module.ID, true, nil)
	assert.NoError(t, err)

	recommended, err := st.NextRecommendedModules(user.ID, DefaultRecommendationLimit)

	assert.NoError(t, err)
	assert.Empty(t, recommended)
}

func TestGetTrainingModule_NotFound(t *testing.T) {
	st := newTestStorage(t)

	_, err := st.GetTrainingModule(123)

	assert.Error(t, err)
	assert.Equal(t, "Training module not found", err.Error())
}
