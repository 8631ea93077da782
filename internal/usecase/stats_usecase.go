package usecase

import (
	"fmt"
	"math"

	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/google/uuid"
)

type StatsUsecase struct {
	jobs   JobAnalysisRepo
	skills SkillRepo
}

func NewStatsUsecase(jobs JobAnalysisRepo, skills SkillRepo) *StatsUsecase {
	return &StatsUsecase{jobs: jobs, skills: skills}
}

func (uc *StatsUsecase) Dashboard(userID uuid.UUID) (*dto.DashboardResponse, error) {
	jobCount, err := uc.jobs.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	avgScore, err := uc.jobs.AverageScoreByUser(userID)
	if err != nil {
		return nil, err
	}

	skillCount, err := uc.skills.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	recent, err := uc.jobs.RecentByUser(userID, 5)
	if err != nil {
		return nil, err
	}

	top, err := uc.skills.TopByProficiency(userID, 10)
	if err != nil {
		return nil, err
	}

	recentMatches := make([]dto.RecentMatch, 0, len(recent))
	for _, job := range recent {
		recentMatches = append(recentMatches, dto.RecentMatch{
			ID:        job.ID,
			Score:     job.MatchScore,
			Title:     job.JobTitle,
			Company:   job.Company,
			Location:  job.Location,
			Status:    job.Status,
			CreatedAt: job.CreatedAt,
		})
	}

	topSkills := make([]dto.TopSkill, 0, len(top))
	for _, skill := range top {
		topSkills = append(topSkills, dto.TopSkill{
			Skill:      skill.SkillName,
			Percentage: skill.ProficiencyLevel,
			Status:     skill.Status,
		})
	}

	return &dto.DashboardResponse{
		Stats: dto.DashboardStats{
			JobsAnalyzed:  jobCount,
			AverageMatch:  int(math.Round(avgScore)),
			SkillsMatched: skillCount,
			// Estimate: half an hour saved per analyzed job.
			TimeSaved: fmt.Sprintf("%dh", jobCount/2),
		},
		RecentMatches: recentMatches,
		TopSkills:     topSkills,
	}, nil
}
