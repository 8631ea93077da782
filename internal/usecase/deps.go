package usecase

import (
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
)

// Repository interfaces consumed by the usecases. The concrete
// implementations live in internal/repository; tests substitute fakes.

type UserRepo interface {
	Create(user *model.User) error
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	Update(user *model.User) error
	Delete(id uuid.UUID) error
}

type ResumeRepo interface {
	CreateWithSkills(resume *model.Resume, skills []model.Skill) error
	FindLatestByUser(userID uuid.UUID) (*model.Resume, error)
	ListByUser(userID uuid.UUID) ([]model.Resume, error)
	Delete(userID, id uuid.UUID) error
}

type JobAnalysisRepo interface {
	CreateWithRecommendations(analysis *model.JobAnalysis, recs []model.Recommendation) error
	ListByUser(userID uuid.UUID) ([]model.JobAnalysis, error)
	FindByID(id uuid.UUID) (*model.JobAnalysis, error)
	Delete(userID, id uuid.UUID) error
	CountByUser(userID uuid.UUID) (int64, error)
	AverageScoreByUser(userID uuid.UUID) (float64, error)
	RecentByUser(userID uuid.UUID, limit int) ([]model.JobAnalysis, error)
}

type SkillRepo interface {
	ListByUser(userID uuid.UUID) ([]model.Skill, error)
	Create(skill *model.Skill) error
	FindByID(id uuid.UUID) (*model.Skill, error)
	Update(skill *model.Skill) error
	Delete(userID, id uuid.UUID) error
	CountByUser(userID uuid.UUID) (int64, error)
	TopByProficiency(userID uuid.UUID, limit int) ([]model.Skill, error)
}

type ProgressRepo interface {
	ListByUser(userID uuid.UUID) ([]model.RecommendationProgress, error)
	FindByKey(userID, jobAnalysisID uuid.UUID, index int) (*model.RecommendationProgress, error)
	Create(record *model.RecommendationProgress) error
	Update(record *model.RecommendationProgress) error
}
