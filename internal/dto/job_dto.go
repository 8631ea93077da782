package dto

import (
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
)

type AnalyzeJobRequest struct {
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	JobDescription string `json:"jobDescription"`
}

type AnalyzeJobResponse struct {
	ID         uuid.UUID             `json:"id"`
	JobTitle   string                `json:"jobTitle"`
	Company    string                `json:"company"`
	Location   string                `json:"location"`
	MatchScore int                   `json:"matchScore"`
	Status     model.MatchStatus     `json:"status"`
	Analysis   *model.AnalysisResult `json:"analysis"`
}
