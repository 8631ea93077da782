package model

import (
	"time"

	"github.com/google/uuid"
)

type ProgressStatus string

const (
	ProgressStatusPending    ProgressStatus = "pending"
	ProgressStatusInProgress ProgressStatus = "in_progress"
	ProgressStatusCompleted  ProgressStatus = "completed"
)

func ValidProgressStatus(s string) bool {
	switch ProgressStatus(s) {
	case ProgressStatusPending, ProgressStatusInProgress, ProgressStatusCompleted:
		return true
	}
	return false
}

// RecommendationProgress tracks a user's completion state for one
// recommendation item inside one analysis. At most one row per
// (user, analysis, index) triple.
type RecommendationProgress struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_analysis_rec" json:"userId"`
	User                *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	JobAnalysisID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_user_analysis_rec" json:"jobAnalysisId"`
	JobAnalysis         *JobAnalysis   `gorm:"constraint:OnDelete:CASCADE;foreignKey:JobAnalysisID;references:ID" json:"-"`
	RecommendationIndex int            `gorm:"not null;uniqueIndex:idx_user_analysis_rec" json:"recommendationIndex"`
	Status              ProgressStatus `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	Notes               string         `gorm:"type:text" json:"notes,omitempty"`
	CompletedAt         *time.Time     `json:"completedAt,omitempty"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (RecommendationProgress) TableName() string {
	return "user_recommendation_progress"
}
