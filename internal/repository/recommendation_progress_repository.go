package repository

import (
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RecommendationProgressRepository struct {
	db *gorm.DB
}

func NewRecommendationProgressRepository(db *gorm.DB) *RecommendationProgressRepository {
	return &RecommendationProgressRepository{db}
}

func (r *RecommendationProgressRepository) ListByUser(userID uuid.UUID) ([]model.RecommendationProgress, error) {
	var records []model.RecommendationProgress
	err := r.db.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

func (r *RecommendationProgressRepository) FindByKey(userID, jobAnalysisID uuid.UUID, index int) (*model.RecommendationProgress, error) {
	var record model.RecommendationProgress
	err := r.db.First(&record,
		"user_id = ? AND job_analysis_id = ? AND recommendation_index = ?",
		userID, jobAnalysisID, index).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecommendationProgressRepository) Create(record *model.RecommendationProgress) error {
	return r.db.Create(record).Error
}

func (r *RecommendationProgressRepository) Update(record *model.RecommendationProgress) error {
	return r.db.Save(record).Error
}
