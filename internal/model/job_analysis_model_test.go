package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchStatusForScore(t *testing.T) {
	cases := []struct {
		score int
		want  MatchStatus
	}{
		{100, MatchStatusExcellent},
		{90, MatchStatusExcellent},
		{89, MatchStatusGood},
		{82, MatchStatusGood},
		{75, MatchStatusGood},
		{74, MatchStatusFair},
		{60, MatchStatusFair},
		{59, MatchStatusPoor},
		{0, MatchStatusPoor},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MatchStatusForScore(tc.score), "score %d", tc.score)
	}
}

func TestValidSkillStatus(t *testing.T) {
	assert.True(t, ValidSkillStatus("matched"))
	assert.True(t, ValidSkillStatus("partial"))
	assert.True(t, ValidSkillStatus("missing"))
	assert.False(t, ValidSkillStatus("unknown"))
	assert.False(t, ValidSkillStatus(""))
}

func TestValidProgressStatus(t *testing.T) {
	assert.True(t, ValidProgressStatus("pending"))
	assert.True(t, ValidProgressStatus("in_progress"))
	assert.True(t, ValidProgressStatus("completed"))
	assert.False(t, ValidProgressStatus("done"))
	assert.False(t, ValidProgressStatus(""))
}
