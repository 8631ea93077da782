package dto

import (
	"time"

	"github.com/fadilmartias/career-compass/internal/model"
)

type UpdateProfileRequest struct {
	Name string `json:"name"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type ExportData struct {
	User                   UserInfo                       `json:"user"`
	JobAnalyses            []model.JobAnalysis            `json:"jobAnalyses"`
	Skills                 []model.Skill                  `json:"skills"`
	Resumes                []model.Resume                 `json:"resumes"`
	RecommendationProgress []model.RecommendationProgress `json:"recommendationProgress"`
	ExportedAt             time.Time                      `json:"exportedAt"`
}
