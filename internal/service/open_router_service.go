package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/config"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/prompt"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// OpenRouterService is the alternative analysis provider, selected with
// LLM_PROVIDER=openrouter. It speaks the chat-completions API.
type OpenRouterService struct {
	APIKey  string
	Model   string
	client  *resty.Client
	prompts *prompt.Engine
}

func NewOpenRouterService(prompts *prompt.Engine) (*OpenRouterService, error) {
	apiKey := config.LoadOpenRouterConfig().APIKey
	if apiKey == "" {
		return nil, fmt.Errorf("OPENROUTER_API_KEY not set")
	}
	m := config.LoadLLMConfig().Model
	if strings.HasPrefix(m, "gemini") {
		m = "openai/gpt-4o-mini"
	}
	return &OpenRouterService{
		APIKey:  apiKey,
		Model:   m,
		client:  resty.New().SetTimeout(90 * time.Second),
		prompts: prompts,
	}, nil
}

func (s *OpenRouterService) AnalyzeJobMatch(ctx context.Context, jobDescription, resumeContent string, userSkills []string) (*model.AnalysisResult, error) {
	filled, err := s.prompts.Get(prompt.JobAnalysis, map[string]string{
		"jobDescription": jobDescription,
		"resumeContent":  resumeContent,
		"userSkills":     strings.Join(userSkills, ", "),
	})
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, filled)
	if err != nil {
		return nil, err
	}
	return parseAnalysisResult(text)
}

func (s *OpenRouterService) ExtractSkills(ctx context.Context, resumeContent string) ([]string, error) {
	filled, err := s.prompts.Get(prompt.SkillsExtraction, map[string]string{
		"resumeContent": resumeContent,
	})
	if err != nil {
		return nil, err
	}

	text, err := s.complete(ctx, filled)
	if err != nil {
		return nil, err
	}
	return parseSkillList(text)
}

func (s *OpenRouterService) complete(ctx context.Context, promptText string) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model": s.Model,
			"messages": []map[string]string{
				{"role": "system", "content": "You are an expert career advisor and resume analyst."},
				{"role": "user", "content": promptText},
			},
		}).
		Post(openRouterEndpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrAnalysisFailed, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: status %d", apperror.ErrAnalysisFailed, resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("%w: empty completion", apperror.ErrMalformedResponse)
	}
	return text, nil
}
