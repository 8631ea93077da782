package repository

import (
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillRepository struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) *SkillRepository {
	return &SkillRepository{db}
}

func (r *SkillRepository) ListByUser(userID uuid.UUID) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepository) Create(skill *model.Skill) error {
	return r.db.Create(skill).Error
}

func (r *SkillRepository) FindByID(id uuid.UUID) (*model.Skill, error) {
	var skill model.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepository) Update(skill *model.Skill) error {
	return r.db.Save(skill).Error
}

func (r *SkillRepository) Delete(userID, id uuid.UUID) error {
	return r.db.Delete(&model.Skill{}, "id = ? AND user_id = ?", id, userID).Error
}

func (r *SkillRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.Skill{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *SkillRepository) TopByProficiency(userID uuid.UUID, limit int) ([]model.Skill, error) {
	var skills []model.Skill
	err := r.db.Where("user_id = ?", userID).
		Order("proficiency_level DESC").
		Limit(limit).
		Find(&skills).Error
	return skills, err
}
