package model

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is the legacy flat row written alongside each analysis.
// The richer recommendation objects live inside JobAnalysis.AnalysisResult.
type Recommendation struct {
	ID                 uuid.UUID    `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID    `gorm:"type:uuid;not null;index" json:"userId"`
	User               *User        `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	JobAnalysisID      *uuid.UUID   `gorm:"type:uuid;index" json:"jobAnalysisId,omitempty"`
	JobAnalysis        *JobAnalysis `gorm:"constraint:OnDelete:CASCADE;foreignKey:JobAnalysisID;references:ID" json:"-"`
	RecommendationType string       `gorm:"type:varchar(100);not null" json:"recommendationType"`
	Content            string       `gorm:"type:text;not null" json:"content"`
	CreatedAt          time.Time    `json:"createdAt"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
