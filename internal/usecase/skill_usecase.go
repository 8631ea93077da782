package usecase

import (
	"errors"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SkillUsecase struct {
	skills SkillRepo
}

func NewSkillUsecase(skills SkillRepo) *SkillUsecase {
	return &SkillUsecase{skills: skills}
}

func (uc *SkillUsecase) List(userID uuid.UUID) ([]model.Skill, error) {
	return uc.skills.ListByUser(userID)
}

func (uc *SkillUsecase) Add(userID uuid.UUID, req dto.AddSkillRequest) (*model.Skill, error) {
	if req.SkillName == "" {
		return nil, apperror.NewValidationError("Invalid input",
			map[string]string{"skillName": "is required"})
	}

	level := 50
	if req.ProficiencyLevel != nil {
		level = *req.ProficiencyLevel
	}
	if level < 0 || level > 100 {
		return nil, apperror.NewValidationError("Invalid input",
			map[string]string{"proficiencyLevel": "must be between 0 and 100"})
	}

	status := model.SkillStatusMatched
	if req.Status != "" {
		if !model.ValidSkillStatus(req.Status) {
			return nil, apperror.NewValidationError("Invalid input",
				map[string]string{"status": "must be one of matched, partial, missing"})
		}
		status = model.SkillStatus(req.Status)
	}

	skill := model.Skill{
		UserID:           userID,
		SkillName:        req.SkillName,
		Category:         req.Category,
		ProficiencyLevel: level,
		Status:           status,
	}
	if err := uc.skills.Create(&skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

func (uc *SkillUsecase) Update(userID, id uuid.UUID, req dto.UpdateSkillRequest) (*model.Skill, error) {
	skill, err := uc.skills.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Skill not found")
		}
		return nil, err
	}
	if skill.UserID != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Skill not found")
	}

	if req.SkillName != nil {
		if *req.SkillName == "" {
			return nil, apperror.NewValidationError("Invalid input",
				map[string]string{"skillName": "cannot be empty"})
		}
		skill.SkillName = *req.SkillName
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.ProficiencyLevel != nil {
		if *req.ProficiencyLevel < 0 || *req.ProficiencyLevel > 100 {
			return nil, apperror.NewValidationError("Invalid input",
				map[string]string{"proficiencyLevel": "must be between 0 and 100"})
		}
		skill.ProficiencyLevel = *req.ProficiencyLevel
	}
	if req.Status != nil {
		if !model.ValidSkillStatus(*req.Status) {
			return nil, apperror.NewValidationError("Invalid input",
				map[string]string{"status": "must be one of matched, partial, missing"})
		}
		skill.Status = model.SkillStatus(*req.Status)
	}

	if err := uc.skills.Update(skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (uc *SkillUsecase) Delete(userID, id uuid.UUID) error {
	return uc.skills.Delete(userID, id)
}
