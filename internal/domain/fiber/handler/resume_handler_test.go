package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fadilmartias/career-compass/internal/config"
	"github.com/fadilmartias/career-compass/internal/logger"
	"github.com/fadilmartias/career-compass/internal/model"
	"github.com/fadilmartias/career-compass/internal/usecase"
	"github.com/fadilmartias/career-compass/internal/util"
)

type stubResumeRepo struct {
	resumes []model.Resume
}

func (r *stubResumeRepo) CreateWithSkills(resume *model.Resume, skills []model.Skill) error {
	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}
	r.resumes = append(r.resumes, *resume)
	return nil
}

func (r *stubResumeRepo) FindLatestByUser(userID uuid.UUID) (*model.Resume, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *stubResumeRepo) ListByUser(userID uuid.UUID) ([]model.Resume, error) {
	return nil, nil
}

func (r *stubResumeRepo) Delete(userID, id uuid.UUID) error {
	return nil
}

type stubAnalyzer struct{}

func (stubAnalyzer) AnalyzeJobMatch(ctx context.Context, jobDescription, resumeContent string, userSkills []string) (*model.AnalysisResult, error) {
	return &model.AnalysisResult{}, nil
}

func (stubAnalyzer) ExtractSkills(ctx context.Context, resumeContent string) ([]string, error) {
	return []string{"Go"}, nil
}

// newUploadTestApp mirrors the server wiring: the configured upload size
// caps both the fiber body limit and the handler's per-file check.
func newUploadTestApp(t *testing.T, maxUploadSize int) (*fiber.App, *stubResumeRepo) {
	t.Helper()

	log, err := logger.New("test")
	require.NoError(t, err)

	cfg := &config.AppConfig{MaxUploadSize: maxUploadSize}
	repo := &stubResumeRepo{}
	uc := usecase.NewResumeUsecase(repo, stubAnalyzer{}, log)

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.MaxUploadSize,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code, body := util.HTTPError(err)
			return c.Status(code).JSON(body)
		},
	})
	NewResumeHandler(uc, cfg).RegisterRoutes(app.Group("/api"))
	return app, repo
}

func multipartResume(t *testing.T, size int) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="resume"; filename="resume.txt"`},
		"Content-Type":        {"text/plain"},
	})
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

// A resume between fasthttp's 4 MiB default body limit and the
// configured maximum must reach the handler and succeed.
func TestUploadAcceptsBodiesUpToConfiguredLimit(t *testing.T) {
	app, repo := newUploadTestApp(t, 10*1024*1024)

	body, contentType := multipartResume(t, 5*1024*1024)
	req := httptest.NewRequest(fiber.MethodPost, "/api/resume/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Len(t, repo.resumes, 1)
}

func TestUploadRejectsBodiesOverConfiguredLimit(t *testing.T) {
	app, repo := newUploadTestApp(t, 1024*1024)

	body, contentType := multipartResume(t, 2*1024*1024)
	req := httptest.NewRequest(fiber.MethodPost, "/api/resume/upload", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	// fasthttp may surface a BodyLimit violation as the error return of
	// app.Test instead of yielding a 413 response object; either way the
	// upload must be rejected before the handler runs.
	resp, err := app.Test(req, -1)
	if err != nil {
		assert.ErrorContains(t, err, "body size exceeds the given limit")
	} else {
		assert.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)
	}
	assert.Empty(t, repo.resumes)
}
