package usecase

import (
	"context"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/logger"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/service"
	"github.com/fadilmartias/career-compass/internal/util"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const defaultProficiency = 70

type ResumeUsecase struct {
	resumes  ResumeRepo
	analyzer service.Analyzer
	log      *logger.Logger
}

func NewResumeUsecase(resumes ResumeRepo, analyzer service.Analyzer, log *logger.Logger) *ResumeUsecase {
	return &ResumeUsecase{resumes: resumes, analyzer: analyzer, log: log}
}

// Upload extracts text from the file, asks the model for the skill
// list, then stores the resume and the skill rows in one transaction.
func (uc *ResumeUsecase) Upload(ctx context.Context, userID uuid.UUID, fileName string, data []byte, mimeType string) (*dto.ResumeUploadResponse, error) {
	content, err := util.ExtractText(data, mimeType)
	if err != nil {
		return nil, err
	}
	return uc.save(ctx, userID, fileName, content)
}

func (uc *ResumeUsecase) AddText(ctx context.Context, userID uuid.UUID, content string) (*dto.ResumeUploadResponse, error) {
	if len(content) < 50 {
		return nil, apperror.NewValidationError("Invalid input",
			map[string]string{"content": "must be at least 50 characters"})
	}
	return uc.save(ctx, userID, "Text Resume", content)
}

func (uc *ResumeUsecase) save(ctx context.Context, userID uuid.UUID, fileName, content string) (*dto.ResumeUploadResponse, error) {
	extracted, err := uc.analyzer.ExtractSkills(ctx, content)
	if err != nil {
		return nil, err
	}

	resume := model.Resume{
		UserID:        userID,
		FileName:      fileName,
		ParsedContent: content,
		Skills:        datatypes.NewJSONSlice(extracted),
	}

	skills := make([]model.Skill, 0, len(extracted))
	for _, name := range extracted {
		skills = append(skills, model.Skill{
			UserID:           userID,
			SkillName:        name,
			ProficiencyLevel: defaultProficiency,
			Status:           model.SkillStatusMatched,
		})
	}

	if err := uc.resumes.CreateWithSkills(&resume, skills); err != nil {
		return nil, err
	}

	uc.log.Info("resume stored", "user_id", userID, "skills_extracted", len(extracted))

	return &dto.ResumeUploadResponse{
		Resume: dto.ResumeInfo{
			ID:              resume.ID,
			FileName:        resume.FileName,
			SkillsExtracted: len(extracted),
		},
		Skills: extracted,
	}, nil
}

func (uc *ResumeUsecase) List(userID uuid.UUID) ([]model.Resume, error) {
	return uc.resumes.ListByUser(userID)
}

func (uc *ResumeUsecase) Delete(userID, id uuid.UUID) error {
	return uc.resumes.Delete(userID, id)
}
