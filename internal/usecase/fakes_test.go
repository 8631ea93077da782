package usecase

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fadilmartias/career-compass/internal/logger"
	"github.com/fadilmartias/career-compass/internal/model"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return log
}

type fakeUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*model.User{}}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

type fakeResumeRepo struct {
	resumes []model.Resume
	skills  []model.Skill
}

func (r *fakeResumeRepo) CreateWithSkills(resume *model.Resume, skills []model.Skill) error {
	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}
	r.resumes = append(r.resumes, *resume)
	r.skills = append(r.skills, skills...)
	return nil
}

func (r *fakeResumeRepo) FindLatestByUser(userID uuid.UUID) (*model.Resume, error) {
	for i := len(r.resumes) - 1; i >= 0; i-- {
		if r.resumes[i].UserID == userID {
			return &r.resumes[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeResumeRepo) ListByUser(userID uuid.UUID) ([]model.Resume, error) {
	var out []model.Resume
	for _, resume := range r.resumes {
		if resume.UserID == userID {
			out = append(out, resume)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) Delete(userID, id uuid.UUID) error {
	kept := r.resumes[:0]
	for _, resume := range r.resumes {
		if !(resume.UserID == userID && resume.ID == id) {
			kept = append(kept, resume)
		}
	}
	r.resumes = kept
	return nil
}

type fakeJobRepo struct {
	analyses []model.JobAnalysis
	recs     []model.Recommendation
}

func (r *fakeJobRepo) CreateWithRecommendations(analysis *model.JobAnalysis, recs []model.Recommendation) error {
	if analysis.ID == uuid.Nil {
		analysis.ID = uuid.New()
	}
	for i := range recs {
		recs[i].JobAnalysisID = &analysis.ID
	}
	r.analyses = append(r.analyses, *analysis)
	r.recs = append(r.recs, recs...)
	return nil
}

func (r *fakeJobRepo) ListByUser(userID uuid.UUID) ([]model.JobAnalysis, error) {
	var out []model.JobAnalysis
	for _, a := range r.analyses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindByID(id uuid.UUID) (*model.JobAnalysis, error) {
	for i := range r.analyses {
		if r.analyses[i].ID == id {
			return &r.analyses[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobRepo) Delete(userID, id uuid.UUID) error {
	kept := r.analyses[:0]
	for _, a := range r.analyses {
		if !(a.UserID == userID && a.ID == id) {
			kept = append(kept, a)
		}
	}
	r.analyses = kept
	return nil
}

func (r *fakeJobRepo) CountByUser(userID uuid.UUID) (int64, error) {
	list, _ := r.ListByUser(userID)
	return int64(len(list)), nil
}

func (r *fakeJobRepo) AverageScoreByUser(userID uuid.UUID) (float64, error) {
	list, _ := r.ListByUser(userID)
	if len(list) == 0 {
		return 0, nil
	}
	sum := 0
	for _, a := range list {
		sum += a.MatchScore
	}
	return float64(sum) / float64(len(list)), nil
}

func (r *fakeJobRepo) RecentByUser(userID uuid.UUID, limit int) ([]model.JobAnalysis, error) {
	list, _ := r.ListByUser(userID)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type fakeSkillRepo struct {
	skills []model.Skill
}

func (r *fakeSkillRepo) ListByUser(userID uuid.UUID) ([]model.Skill, error) {
	var out []model.Skill
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSkillRepo) Create(skill *model.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	r.skills = append(r.skills, *skill)
	return nil
}

func (r *fakeSkillRepo) FindByID(id uuid.UUID) (*model.Skill, error) {
	for i := range r.skills {
		if r.skills[i].ID == id {
			return &r.skills[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSkillRepo) Update(skill *model.Skill) error {
	for i := range r.skills {
		if r.skills[i].ID == skill.ID {
			r.skills[i] = *skill
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeSkillRepo) Delete(userID, id uuid.UUID) error {
	kept := r.skills[:0]
	for _, s := range r.skills {
		if !(s.UserID == userID && s.ID == id) {
			kept = append(kept, s)
		}
	}
	r.skills = kept
	return nil
}

func (r *fakeSkillRepo) CountByUser(userID uuid.UUID) (int64, error) {
	list, _ := r.ListByUser(userID)
	return int64(len(list)), nil
}

func (r *fakeSkillRepo) TopByProficiency(userID uuid.UUID, limit int) ([]model.Skill, error) {
	list, _ := r.ListByUser(userID)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].ProficiencyLevel > list[j].ProficiencyLevel
	})
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

type fakeProgressRepo struct {
	records []model.RecommendationProgress
}

func (r *fakeProgressRepo) ListByUser(userID uuid.UUID) ([]model.RecommendationProgress, error) {
	var out []model.RecommendationProgress
	for _, p := range r.records {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProgressRepo) FindByKey(userID, jobAnalysisID uuid.UUID, index int) (*model.RecommendationProgress, error) {
	for i := range r.records {
		p := &r.records[i]
		if p.UserID == userID && p.JobAnalysisID == jobAnalysisID && p.RecommendationIndex == index {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProgressRepo) Create(record *model.RecommendationProgress) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	r.records = append(r.records, *record)
	return nil
}

func (r *fakeProgressRepo) Update(record *model.RecommendationProgress) error {
	for i := range r.records {
		if r.records[i].ID == record.ID {
			r.records[i] = *record
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeAnalyzer struct {
	result *model.AnalysisResult
	skills []string
	err    error
}

func (a *fakeAnalyzer) AnalyzeJobMatch(ctx context.Context, jobDescription, resumeContent string, userSkills []string) (*model.AnalysisResult, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.result, nil
}

func (a *fakeAnalyzer) ExtractSkills(ctx context.Context, resumeContent string) ([]string, error) {
	if a.err != nil {
		return nil, a.err
	}
	return a.skills, nil
}
