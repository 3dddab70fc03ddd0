package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp   int
		want Level
	}{
		{0, LevelBeginner},
		{199, LevelBeginner},
		{200, LevelIntermediate},
		{499, LevelIntermediate},
		{500, LevelAdvanced},
		{1500, LevelAdvanced},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, LevelForXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestNextLevelXP(t *testing.T) {
	assert.Equal(t, 200, NextLevelXP(LevelBeginner))
	assert.Equal(t, 500, NextLevelXP(LevelIntermediate))
	assert.Equal(t, 1000, NextLevelXP(LevelAdvanced))
}
