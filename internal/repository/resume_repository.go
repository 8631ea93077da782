package repository

import (
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResumeRepository struct {
	db *gorm.DB
}

func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db}
}

// CreateWithSkills persists a resume and its extracted skills in one
// transaction. Skills are upserted by case-insensitive name so repeated
// uploads refresh existing rows instead of duplicating them.
func (r *ResumeRepository) CreateWithSkills(resume *model.Resume, skills []model.Skill) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(resume).Error; err != nil {
			return err
		}
		for i := range skills {
			var existing model.Skill
			err := tx.First(&existing,
				"user_id = ? AND LOWER(skill_name) = LOWER(?)",
				skills[i].UserID, skills[i].SkillName).Error
			switch {
			case err == nil:
				existing.ProficiencyLevel = skills[i].ProficiencyLevel
				existing.Status = skills[i].Status
				if err := tx.Save(&existing).Error; err != nil {
					return err
				}
			case err == gorm.ErrRecordNotFound:
				if err := tx.Create(&skills[i]).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
}

func (r *ResumeRepository) FindLatestByUser(userID uuid.UUID) (*model.Resume, error) {
	var resume model.Resume
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").First(&resume).Error
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

func (r *ResumeRepository) ListByUser(userID uuid.UUID) ([]model.Resume, error) {
	var resumes []model.Resume
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&resumes).Error
	return resumes, err
}

func (r *ResumeRepository) Delete(userID, id uuid.UUID) error {
	return r.db.Delete(&model.Resume{}, "id = ? AND user_id = ?", id, userID).Error
}
