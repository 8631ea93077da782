package repository

import (
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobAnalysisRepository struct {
	db *gorm.DB
}

func NewJobAnalysisRepository(db *gorm.DB) *JobAnalysisRepository {
	return &JobAnalysisRepository{db}
}

// CreateWithRecommendations persists the analysis and its legacy
// recommendation rows in one transaction.
func (r *JobAnalysisRepository) CreateWithRecommendations(analysis *model.JobAnalysis, recs []model.Recommendation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(analysis).Error; err != nil {
			return err
		}
		for i := range recs {
			recs[i].JobAnalysisID = &analysis.ID
		}
		if len(recs) > 0 {
			if err := tx.Create(&recs).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *JobAnalysisRepository) ListByUser(userID uuid.UUID) ([]model.JobAnalysis, error) {
	var analyses []model.JobAnalysis
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&analyses).Error
	return analyses, err
}

func (r *JobAnalysisRepository) FindByID(id uuid.UUID) (*model.JobAnalysis, error) {
	var analysis model.JobAnalysis
	err := r.db.First(&analysis, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &analysis, nil
}

func (r *JobAnalysisRepository) Delete(userID, id uuid.UUID) error {
	return r.db.Delete(&model.JobAnalysis{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *JobAnalysisRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.JobAnalysis{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *JobAnalysisRepository) AverageScoreByUser(userID uuid.UUID) (float64, error) {
	var avg float64
	err := r.db.Model(&model.JobAnalysis{}).
		Where("user_id = ?", userID).
		Select("COALESCE(AVG(match_score), 0)").
		Scan(&avg).Error
	return avg, err
}

func (r *JobAnalysisRepository) RecentByUser(userID uuid.UUID, limit int) ([]model.JobAnalysis, error) {
	var analyses []model.JobAnalysis
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&analyses).Error
	return analyses, err
}
