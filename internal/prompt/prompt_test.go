package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/logger"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	return NewEngine(log)
}

func TestLoadKnownTemplates(t *testing.T) {
	e := newTestEngine(t)

	jobTpl, err := e.Load(JobAnalysis)
	require.NoError(t, err)
	assert.Contains(t, jobTpl, "{{jobDescription}}")
	assert.Contains(t, jobTpl, "{{resumeContent}}")
	assert.Contains(t, jobTpl, "{{userSkills}}")

	skillsTpl, err := e.Load(SkillsExtraction)
	require.NoError(t, err)
	assert.Contains(t, skillsTpl, "{{resumeContent}}")
}

func TestLoadUnknownTemplate(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Load("does-not-exist")
	assert.ErrorIs(t, err, apperror.ErrTemplateNotFound)
}

func TestFillSubstitutesPlaceholders(t *testing.T) {
	e := newTestEngine(t)

	filled := e.Fill("Job: {{job}}, resume: {{resume}}", map[string]string{
		"job":    "Backend Engineer",
		"resume": "ten years of Go",
	})
	assert.Equal(t, "Job: Backend Engineer, resume: ten years of Go", filled)
}

func TestFillIsSinglePass(t *testing.T) {
	e := newTestEngine(t)

	// A substituted value containing placeholder syntax must not be
	// expanded again.
	filled := e.Fill("{{a}} {{b}}", map[string]string{
		"a": "{{b}}",
		"b": "two",
	})
	assert.Equal(t, "{{b}} two", filled)
}

func TestFillLeavesUnresolvedPlaceholders(t *testing.T) {
	e := newTestEngine(t)

	filled := e.Fill("known: {{known}}, unknown: {{unknown}}", map[string]string{
		"known": "yes",
	})
	assert.Equal(t, "known: yes, unknown: {{unknown}}", filled)
}

func TestFillWithoutPlaceholdersIsIdentity(t *testing.T) {
	e := newTestEngine(t)
	assert.Equal(t, "plain text", e.Fill("plain text", nil))
}

func TestGet(t *testing.T) {
	e := newTestEngine(t)

	prompt, err := e.Get(SkillsExtraction, map[string]string{
		"resumeContent": "Senior Go developer, Kubernetes, PostgreSQL",
	})
	require.NoError(t, err)
	assert.Contains(t, prompt, "Senior Go developer, Kubernetes, PostgreSQL")
	assert.NotContains(t, prompt, "{{resumeContent}}")
}
