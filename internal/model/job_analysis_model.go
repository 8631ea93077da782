package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type MatchStatus string

const (
	MatchStatusExcellent MatchStatus = "excellent"
	MatchStatusGood      MatchStatus = "good"
	MatchStatusFair      MatchStatus = "fair"
	MatchStatusPoor      MatchStatus = "poor"
)

// MatchStatusForScore maps a 0-100 match score to its status band.
// The score is the single source of truth; the model's self-reported
// status is never trusted.
func MatchStatusForScore(score int) MatchStatus {
	switch {
	case score >= 90:
		return MatchStatusExcellent
	case score >= 75:
		return MatchStatusGood
	case score >= 60:
		return MatchStatusFair
	default:
		return MatchStatusPoor
	}
}

type JobAnalysis struct {
	ID             uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	User           *User                       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	JobTitle       string                      `gorm:"type:varchar(255);not null" json:"jobTitle"`
	Company        string                      `gorm:"type:varchar(255);not null" json:"company"`
	Location       string                      `gorm:"type:varchar(255)" json:"location"`
	JobDescription string                      `gorm:"type:text;not null" json:"jobDescription"`
	RequiredSkills datatypes.JSONSlice[string] `json:"requiredSkills"`
	MatchScore     int                         `gorm:"not null" json:"matchScore"`
	Status         MatchStatus                 `gorm:"type:varchar(20);not null" json:"status"`
	AnalysisResult datatypes.JSON              `gorm:"type:jsonb" json:"analysisResult"`
	CreatedAt      time.Time                   `json:"createdAt"`
}

func (JobAnalysis) TableName() string {
	return "job_analyses"
}
