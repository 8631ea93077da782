package usecase

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadilmartias/career-compass/internal/dto"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/util"
)

func newUserUsecase(t *testing.T) (*UserUsecase, *fakeUserRepo, uuid.UUID) {
	t.Helper()

	users := newFakeUserRepo()
	hash, err := util.HashPassword("s3cret-pass")
	require.NoError(t, err)
	user := model.User{Email: "dev@example.com", PasswordHash: hash, Name: "Alex Doe"}
	require.NoError(t, users.Create(&user))

	uc := NewUserUsecase(users, &fakeJobRepo{}, &fakeSkillRepo{}, &fakeResumeRepo{}, &fakeProgressRepo{}, newTestLogger(t))
	return uc, users, user.ID
}

func TestUpdateProfile(t *testing.T) {
	uc, _, userID := newUserUsecase(t)

	info, err := uc.UpdateProfile(userID, dto.UpdateProfileRequest{Name: "  Alex D.  "})
	require.NoError(t, err)
	assert.Equal(t, "Alex D.", info.Name)

	_, err = uc.UpdateProfile(userID, dto.UpdateProfileRequest{Name: "   "})
	assert.Error(t, err)
}

func TestChangePassword(t *testing.T) {
	uc, users, userID := newUserUsecase(t)

	err := uc.ChangePassword(userID, dto.ChangePasswordRequest{
		CurrentPassword: "s3cret-pass",
		NewPassword:     "n3w-secret",
	})
	require.NoError(t, err)

	user, err := users.FindByID(userID)
	require.NoError(t, err)
	assert.True(t, util.CheckPassword("n3w-secret", user.PasswordHash))
	assert.False(t, util.CheckPassword("s3cret-pass", user.PasswordHash))
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	uc, _, userID := newUserUsecase(t)

	err := uc.ChangePassword(userID, dto.ChangePasswordRequest{
		CurrentPassword: "wrong-pass",
		NewPassword:     "n3w-secret",
	})

	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusUnauthorized, fiberErr.Code)
}

type failingUserRepo struct {
	fakeUserRepo
}

func (r *failingUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	return nil, errDBDown
}

func TestUserLookupsPropagateRepositoryErrors(t *testing.T) {
	uc := NewUserUsecase(&failingUserRepo{}, &fakeJobRepo{}, &fakeSkillRepo{}, &fakeResumeRepo{}, &fakeProgressRepo{}, newTestLogger(t))
	userID := uuid.New()

	var fiberErr *fiber.Error

	_, err := uc.Profile(userID)
	assert.ErrorIs(t, err, errDBDown)
	assert.False(t, errors.As(err, &fiberErr))

	_, err = uc.UpdateProfile(userID, dto.UpdateProfileRequest{Name: "Alex Doe"})
	assert.ErrorIs(t, err, errDBDown)

	err = uc.ChangePassword(userID, dto.ChangePasswordRequest{
		CurrentPassword: "s3cret-pass", NewPassword: "n3w-secret",
	})
	assert.ErrorIs(t, err, errDBDown)
}

func TestExportData(t *testing.T) {
	users := newFakeUserRepo()
	hash, err := util.HashPassword("s3cret-pass")
	require.NoError(t, err)
	user := model.User{Email: "dev@example.com", PasswordHash: hash, Name: "Alex Doe"}
	require.NoError(t, users.Create(&user))

	jobs := &fakeJobRepo{}
	analysis := model.JobAnalysis{UserID: user.ID, JobTitle: "Backend Engineer", Company: "Acme"}
	require.NoError(t, jobs.CreateWithRecommendations(&analysis, nil))

	skills := &fakeSkillRepo{}
	require.NoError(t, skills.Create(&model.Skill{UserID: user.ID, SkillName: "Go"}))

	uc := NewUserUsecase(users, jobs, skills, &fakeResumeRepo{}, &fakeProgressRepo{}, newTestLogger(t))

	export, err := uc.ExportData(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", export.User.Email)
	assert.Len(t, export.JobAnalyses, 1)
	assert.Len(t, export.Skills, 1)
	assert.False(t, export.ExportedAt.IsZero())
}

func TestDeleteAccount(t *testing.T) {
	uc, users, userID := newUserUsecase(t)

	err := uc.DeleteAccount(userID, dto.DeleteAccountRequest{Password: "wrong-pass"})
	var fiberErr *fiber.Error
	require.True(t, errors.As(err, &fiberErr))
	assert.Equal(t, fiber.StatusUnauthorized, fiberErr.Code)

	require.NoError(t, uc.DeleteAccount(userID, dto.DeleteAccountRequest{Password: "s3cret-pass"}))
	_, err = users.FindByID(userID)
	assert.Error(t, err)
}
