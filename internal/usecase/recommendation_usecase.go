package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/logger"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

type RecommendationUsecase struct {
	jobs     JobAnalysisRepo
	progress ProgressRepo
	log      *logger.Logger
}

func NewRecommendationUsecase(jobs JobAnalysisRepo, progress ProgressRepo, log *logger.Logger) *RecommendationUsecase {
	return &RecommendationUsecase{jobs: jobs, progress: progress, log: log}
}

// normalizeRecommendation converts either stored shape, bare string or
// structured object, into the single internal item shape. The union
// never leaves this boundary.
func normalizeRecommendation(analysis *model.JobAnalysis, raw json.RawMessage, index int) dto.RecommendationItem {
	item := dto.RecommendationItem{
		ID:                  fmt.Sprintf("%s-%d", analysis.ID, index),
		JobAnalysisID:       analysis.ID,
		JobTitle:            analysis.JobTitle,
		Company:             analysis.Company,
		RecommendationIndex: index,
		Type:                "improve",
		ActionItems:         []string{},
		Resources:           []string{},
		Status:              model.ProgressStatusPending,
	}

	value := gjson.ParseBytes(raw)
	if value.Type == gjson.String {
		item.Title = fmt.Sprintf("Recommendation %d", index+1)
		item.Description = value.String()
		if index < 2 {
			item.Priority = "high"
		} else {
			item.Priority = "medium"
		}
		return item
	}

	item.Title = value.Get("title").String()
	item.Description = value.Get("description").String()
	item.Priority = value.Get("priority").String()
	if item.Priority == "" {
		item.Priority = "medium"
	}
	for _, v := range value.Get("actionItems").Array() {
		item.ActionItems = append(item.ActionItems, v.String())
	}
	for _, v := range value.Get("resources").Array() {
		item.Resources = append(item.Resources, v.String())
	}
	return item
}

func analysisRecommendations(analysis *model.JobAnalysis) []json.RawMessage {
	var result model.AnalysisResult
	if err := json.Unmarshal(analysis.AnalysisResult, &result); err != nil {
		return nil
	}
	return result.Recommendations
}

// Aggregate flattens every analysis's recommendations, left-joins the
// user's progress rows, and applies the optional filters.
func (uc *RecommendationUsecase) Aggregate(userID uuid.UUID, filter dto.RecommendationFilter) ([]dto.RecommendationItem, error) {
	analyses, err := uc.jobs.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	items := []dto.RecommendationItem{}
	for i := range analyses {
		for index, raw := range analysisRecommendations(&analyses[i]) {
			items = append(items, normalizeRecommendation(&analyses[i], raw, index))
		}
	}

	records, err := uc.progress.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	progressByKey := make(map[string]*model.RecommendationProgress, len(records))
	for i := range records {
		key := fmt.Sprintf("%s-%d", records[i].JobAnalysisID, records[i].RecommendationIndex)
		progressByKey[key] = &records[i]
	}

	for i := range items {
		if p, ok := progressByKey[items[i].ID]; ok {
			items[i].Status = p.Status
			items[i].CompletedAt = p.CompletedAt
			items[i].Notes = p.Notes
			id := p.ID
			items[i].ProgressID = &id
		}
	}

	filtered := items[:0:0]
	search := strings.ToLower(filter.Search)
	for _, item := range items {
		if filter.Priority != "" && item.Priority != filter.Priority {
			continue
		}
		if filter.Status != "" && string(item.Status) != filter.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Title), search) &&
			!strings.Contains(strings.ToLower(item.Description), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	if filtered == nil {
		filtered = []dto.RecommendationItem{}
	}
	return filtered, nil
}

func (uc *RecommendationUsecase) Stats(userID uuid.UUID) (*dto.RecommendationStats, error) {
	analyses, err := uc.jobs.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	total := 0
	for i := range analyses {
		total += len(analysisRecommendations(&analyses[i]))
	}

	records, err := uc.progress.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	completed, inProgress := 0, 0
	for _, p := range records {
		switch p.Status {
		case model.ProgressStatusCompleted:
			completed++
		case model.ProgressStatusInProgress:
			inProgress++
		}
	}

	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(completed) / float64(total) * 100))
	}

	return &dto.RecommendationStats{
		Total:                total,
		Completed:            completed,
		InProgress:           inProgress,
		Pending:              total - completed - inProgress,
		CompletionPercentage: pct,
	}, nil
}

// UpdateStatus upserts the progress row for one (user, analysis, index)
// triple. completedAt is set exactly when the new status is completed;
// existing notes survive when the request carries none.
func (uc *RecommendationUsecase) UpdateStatus(userID, jobAnalysisID uuid.UUID, index int, req dto.UpdateRecommendationStatusRequest) (*model.RecommendationProgress, error) {
	if !model.ValidProgressStatus(req.Status) {
		return nil, apperror.NewValidationError("Invalid status", nil)
	}
	status := model.ProgressStatus(req.Status)

	var completedAt *time.Time
	if status == model.ProgressStatusCompleted {
		now := time.Now()
		completedAt = &now
	}

	existing, err := uc.progress.FindByKey(userID, jobAnalysisID, index)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		record := model.RecommendationProgress{
			UserID:              userID,
			JobAnalysisID:       jobAnalysisID,
			RecommendationIndex: index,
			Status:              status,
			CompletedAt:         completedAt,
		}
		if req.Notes != nil {
			record.Notes = *req.Notes
		}
		if err := uc.progress.Create(&record); err != nil {
			return nil, err
		}
		return &record, nil
	}

	existing.Status = status
	existing.CompletedAt = completedAt
	if req.Notes != nil {
		existing.Notes = *req.Notes
	}
	if err := uc.progress.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}
