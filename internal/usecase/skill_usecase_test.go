package usecase

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/career-compass/internal/apperror"
	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/model"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestAddSkillDefaults(t *testing.T) {
	uc := NewSkillUsecase(&fakeSkillRepo{})

	skill, err := uc.Add(uuid.New(), dto.AddSkillRequest{SkillName: "Go"})
	require.NoError(t, err)
	assert.Equal(t, "Go", skill.SkillName)
	assert.Equal(t, 50, skill.ProficiencyLevel)
	assert.Equal(t, model.SkillStatusMatched, skill.Status)
}

func TestAddSkillValidation(t *testing.T) {
	uc := NewSkillUsecase(&fakeSkillRepo{})
	userID := uuid.New()

	var validationErr *apperror.ValidationError

	_, err := uc.Add(userID, dto.AddSkillRequest{})
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.Add(userID, dto.AddSkillRequest{SkillName: "Go", ProficiencyLevel: intPtr(120)})
	require.ErrorAs(t, err, &validationErr)

	_, err = uc.Add(userID, dto.AddSkillRequest{SkillName: "Go", Status: "expert"})
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateSkillPartial(t *testing.T) {
	skills := &fakeSkillRepo{}
	uc := NewSkillUsecase(skills)
	userID := uuid.New()

	created, err := uc.Add(userID, dto.AddSkillRequest{
		SkillName: "Go", ProficiencyLevel: intPtr(60), Status: "partial",
	})
	require.NoError(t, err)

	updated, err := uc.Update(userID, created.ID, dto.UpdateSkillRequest{
		ProficiencyLevel: intPtr(85),
	})
	require.NoError(t, err)
	assert.Equal(t, 85, updated.ProficiencyLevel)
	// Untouched fields survive.
	assert.Equal(t, "Go", updated.SkillName)
	assert.Equal(t, model.SkillStatusPartial, updated.Status)
}

type failingSkillRepo struct {
	fakeSkillRepo
}

func (r *failingSkillRepo) FindByID(id uuid.UUID) (*model.Skill, error) {
	return nil, errDBDown
}

func TestUpdateSkillPropagatesRepositoryErrors(t *testing.T) {
	uc := NewSkillUsecase(&failingSkillRepo{})

	_, err := uc.Update(uuid.New(), uuid.New(), dto.UpdateSkillRequest{ProficiencyLevel: intPtr(80)})
	assert.ErrorIs(t, err, errDBDown)

	var fiberErr *fiber.Error
	assert.False(t, errors.As(err, &fiberErr))
}

func TestUpdateSkillOwnership(t *testing.T) {
	skills := &fakeSkillRepo{}
	uc := NewSkillUsecase(skills)

	created, err := uc.Add(uuid.New(), dto.AddSkillRequest{SkillName: "Go"})
	require.NoError(t, err)

	_, err = uc.Update(uuid.New(), created.ID, dto.UpdateSkillRequest{SkillName: strPtr("Rust")})
	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}
