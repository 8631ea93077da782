package dto

import (
	"time"

	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
)

// RecommendationItem is the normalized view of one recommendation
// inside one analysis, joined with the user's progress. Its ID is
// "{jobAnalysisId}-{index}".
type RecommendationItem struct {
	ID                  string               `json:"id"`
	JobAnalysisID       uuid.UUID            `json:"jobAnalysisId"`
	JobTitle            string               `json:"jobTitle"`
	Company             string               `json:"company"`
	RecommendationIndex int                  `json:"recommendationIndex"`
	Title               string               `json:"title"`
	Description         string               `json:"description"`
	Priority            string               `json:"priority"`
	Type                string               `json:"type"`
	ActionItems         []string             `json:"actionItems"`
	Resources           []string             `json:"resources"`
	Status              model.ProgressStatus `json:"status"`
	CompletedAt         *time.Time           `json:"completedAt,omitempty"`
	Notes               string               `json:"notes,omitempty"`
	ProgressID          *uuid.UUID           `json:"progressId,omitempty"`
}

type UpdateRecommendationStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

type RecommendationStats struct {
	Total                int `json:"total"`
	Completed            int `json:"completed"`
	InProgress           int `json:"inProgress"`
	Pending              int `json:"pending"`
	CompletionPercentage int `json:"completionPercentage"`
}

type RecommendationFilter struct {
	Priority string
	Status   string
	Search   string
}
