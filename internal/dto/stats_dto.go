package dto

import (
	"time"

	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
)

type DashboardStats struct {
	JobsAnalyzed  int64  `json:"jobsAnalyzed"`
	AverageMatch  int    `json:"averageMatch"`
	SkillsMatched int64  `json:"skillsMatched"`
	TimeSaved     string `json:"timeSaved"`
}

type RecentMatch struct {
	ID        uuid.UUID         `json:"id"`
	Score     int               `json:"score"`
	Title     string            `json:"title"`
	Company   string            `json:"company"`
	Location  string            `json:"location"`
	Status    model.MatchStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

type TopSkill struct {
	Skill      string            `json:"skill"`
	Percentage int               `json:"percentage"`
	Status     model.SkillStatus `json:"status"`
}

type DashboardResponse struct {
	Stats         DashboardStats `json:"stats"`
	RecentMatches []RecentMatch  `json:"recentMatches"`
	TopSkills     []TopSkill     `json:"topSkills"`
}
