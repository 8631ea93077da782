package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/model"
)

// Analyzer scores a job description against a resume and extracts
// skills from resume text. Both operations are all-or-nothing: any
// transport or parse failure aborts the whole call.
type Analyzer interface {
	AnalyzeJobMatch(ctx context.Context, jobDescription, resumeContent string, userSkills []string) (*model.AnalysisResult, error)
	ExtractSkills(ctx context.Context, resumeContent string) ([]string, error)
}

// extractJSONObject locates the widest {...} span in a raw model
// response, which usually arrives wrapped in prose or code fences.
func extractJSONObject(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON object in response", apperror.ErrMalformedResponse)
	}
	return text[start : end+1], nil
}

func extractJSONArray(text string) (string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: no JSON array in response", apperror.ErrMalformedResponse)
	}
	return text[start : end+1], nil
}

// parseAnalysisResult parses a job-match response. The score is clamped
// to [0,100] and the status band is always re-derived from it; the
// model's self-reported status is discarded.
func parseAnalysisResult(text string) (*model.AnalysisResult, error) {
	span, err := extractJSONObject(text)
	if err != nil {
		return nil, err
	}

	var result model.AnalysisResult
	if err := json.Unmarshal([]byte(span), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrMalformedResponse, err)
	}

	if result.MatchScore < 0 {
		result.MatchScore = 0
	} else if result.MatchScore > 100 {
		result.MatchScore = 100
	}
	result.Status = model.MatchStatusForScore(result.MatchScore)

	return &result, nil
}

func parseSkillList(text string) ([]string, error) {
	span, err := extractJSONArray(text)
	if err != nil {
		return nil, err
	}

	var skills []string
	if err := json.Unmarshal([]byte(span), &skills); err != nil {
		return nil, fmt.Errorf("%w: %v", apperror.ErrMalformedResponse, err)
	}
	return skills, nil
}
