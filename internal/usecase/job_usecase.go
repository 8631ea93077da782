package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/logger"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type JobUsecase struct {
	jobs     JobAnalysisRepo
	resumes  ResumeRepo
	skills   SkillRepo
	analyzer service.Analyzer
	log      *logger.Logger
}

func NewJobUsecase(jobs JobAnalysisRepo, resumes ResumeRepo, skills SkillRepo, analyzer service.Analyzer, log *logger.Logger) *JobUsecase {
	return &JobUsecase{jobs: jobs, resumes: resumes, skills: skills, analyzer: analyzer, log: log}
}

// Analyze runs the full match pipeline: most recent resume plus the
// user's skills go to the model, the result is persisted together with
// its legacy recommendation rows. Nothing is written if any step fails.
func (uc *JobUsecase) Analyze(ctx context.Context, userID uuid.UUID, req dto.AnalyzeJobRequest) (*dto.AnalyzeJobResponse, error) {
	fields := map[string]string{}
	if len(req.JobTitle) < 2 {
		fields["jobTitle"] = "must be at least 2 characters"
	}
	if len(req.Company) < 2 {
		fields["company"] = "must be at least 2 characters"
	}
	if len(req.JobDescription) < 50 {
		fields["jobDescription"] = "must be at least 50 characters"
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError("Invalid input", fields)
	}

	resume, err := uc.resumes.FindLatestByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewValidationError("Please upload a resume first", nil)
		}
		return nil, err
	}

	userSkills, err := uc.skills.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	skillNames := make([]string, 0, len(userSkills))
	for _, s := range userSkills {
		skillNames = append(skillNames, s.SkillName)
	}

	analysis, err := uc.analyzer.AnalyzeJobMatch(ctx, req.JobDescription, resume.ParsedContent, skillNames)
	if err != nil {
		uc.log.Error("job analysis failed", "user_id", userID, "error", err)
		return nil, err
	}

	resultJSON, err := json.Marshal(analysis)
	if err != nil {
		return nil, err
	}

	record := model.JobAnalysis{
		UserID:         userID,
		JobTitle:       req.JobTitle,
		Company:        req.Company,
		Location:       req.Location,
		JobDescription: req.JobDescription,
		RequiredSkills: datatypes.NewJSONSlice(analysis.RequiredSkills),
		MatchScore:     analysis.MatchScore,
		Status:         analysis.Status,
		AnalysisResult: datatypes.JSON(resultJSON),
	}

	recs := make([]model.Recommendation, 0, len(analysis.Recommendations))
	for _, raw := range analysis.Recommendations {
		recs = append(recs, model.Recommendation{
			UserID:             userID,
			RecommendationType: "improvement",
			Content:            recommendationText(raw),
		})
	}

	if err := uc.jobs.CreateWithRecommendations(&record, recs); err != nil {
		return nil, err
	}

	uc.log.Info("job analyzed", "user_id", userID, "analysis_id", record.ID, "score", analysis.MatchScore)

	return &dto.AnalyzeJobResponse{
		ID:         record.ID,
		JobTitle:   record.JobTitle,
		Company:    record.Company,
		Location:   record.Location,
		MatchScore: analysis.MatchScore,
		Status:     analysis.Status,
		Analysis:   analysis,
	}, nil
}

// recommendationText flattens one recommendation for the legacy rows:
// the bare string form as-is, the object form by its description.
func recommendationText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Description != "" {
		return obj.Description
	}
	return string(raw)
}

func (uc *JobUsecase) List(userID uuid.UUID) ([]model.JobAnalysis, error) {
	return uc.jobs.ListByUser(userID)
}

func (uc *JobUsecase) Get(userID, id uuid.UUID) (*model.JobAnalysis, error) {
	analysis, err := uc.jobs.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Job analysis not found")
		}
		return nil, err
	}
	if analysis.UserID != userID {
		return nil, fiber.NewError(fiber.StatusNotFound, "Job analysis not found")
	}
	return analysis, nil
}

func (uc *JobUsecase) Delete(userID, id uuid.UUID) error {
	return uc.jobs.Delete(userID, id)
}
