package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-records-api/internal/models"
	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
)

type facultyRepository interface {
	List(ctx context.Context) ([]models.Faculty, error)
	FindByNumber(ctx context.Context, facultyNumber string) (*models.Faculty, error)
	Create(ctx context.Context, faculty *models.Faculty) error
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, facultyNumber string) error
}

// FacultyFields are the writable non-key faculty attributes. A nil field is stored as NULL.
type FacultyFields struct {
	FacultyName    *Scalar `json:"faculty_name" form:"faculty_name"`
	FacultyProfile *Scalar `json:"faculty_profile" form:"faculty_profile"`
	JoiningYear    *Scalar `json:"joining_year" form:"joining_year"`
	BirthDate      *Scalar `json:"birth_date" form:"birth_date"`
	Department     *Scalar `json:"department" form:"department"`
	Mobile         *Scalar `json:"mobile" form:"mobile"`
	FacultyEmail   *Scalar `json:"faculty_email" form:"faculty_email"`
}

// CreateFacultyRequest holds payload for creating faculty.
type CreateFacultyRequest struct {
	FacultyNumber string `json:"faculty_number" form:"faculty_number" validate:"required"`
	FacultyFields
}

// UpdateFacultyRequest holds payload for updating faculty. The key comes from the path.
type UpdateFacultyRequest struct {
	FacultyFields
}

// FacultyService handles faculty use-cases.
type FacultyService struct {
	repo      facultyRepository
	validator *validator.Validate
	store     recorder
}

// NewFacultyService constructs the faculty service.
func NewFacultyService(repo facultyRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *FacultyService {
	if validate == nil {
		validate = validator.New()
	}
	return &FacultyService{repo: repo, validator: validate, store: newRecorder(logger, metrics, "Faculty not found")}
}

// List returns every faculty record.
func (s *FacultyService) List(ctx context.Context) ([]models.Faculty, error) {
	var faculties []models.Faculty
	err := s.store.run(ctx, "faculty.list", msgFetchFailed, zap.Skip(), func(ctx context.Context) error {
		var err error
		faculties, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if faculties == nil {
		faculties = []models.Faculty{}
	}
	return faculties, nil
}

// Get returns one faculty record.
func (s *FacultyService) Get(ctx context.Context, facultyNumber string) (*models.Faculty, error) {
	var faculty *models.Faculty
	err := s.store.run(ctx, "faculty.get", msgFetchFailed, zap.String("faculty_number", facultyNumber), func(ctx context.Context) error {
		var err error
		faculty, err = s.repo.FindByNumber(ctx, facultyNumber)
		return err
	})
	if err != nil {
		return nil, err
	}
	return faculty, nil
}

// Create registers a new faculty member. uploaded is the stored name of a
// profile file sent with the request, or nil; a profile value in the body is ignored.
func (s *FacultyService) Create(ctx context.Context, req CreateFacultyRequest, uploaded *string) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Invalid(err, "")
	}
	faculty := req.FacultyFields.toModel(req.FacultyNumber)
	faculty.FacultyProfile = uploaded
	return s.store.run(ctx, "faculty.create", msgInsertFailed, zap.String("faculty_number", req.FacultyNumber), func(ctx context.Context) error {
		return s.repo.Create(ctx, faculty)
	})
}

// Update overwrites every non-key attribute of an existing faculty member.
// Without a new upload the profile is whatever the client echoed back,
// including an empty string or nothing at all.
func (s *FacultyService) Update(ctx context.Context, facultyNumber string, req UpdateFacultyRequest, uploaded *string) error {
	faculty := req.FacultyFields.toModel(facultyNumber)
	if uploaded != nil {
		faculty.FacultyProfile = uploaded
	}
	return s.store.run(ctx, "faculty.update", msgUpdateFailed, zap.String("faculty_number", facultyNumber), func(ctx context.Context) error {
		return s.repo.Update(ctx, faculty)
	})
}

// Delete removes a faculty member. The stored profile file is left in place.
func (s *FacultyService) Delete(ctx context.Context, facultyNumber string) error {
	return s.store.run(ctx, "faculty.delete", msgDeleteFailed, zap.String("faculty_number", facultyNumber), func(ctx context.Context) error {
		return s.repo.Delete(ctx, facultyNumber)
	})
}

func (f FacultyFields) toModel(facultyNumber string) *models.Faculty {
	return &models.Faculty{
		FacultyNumber:  facultyNumber,
		FacultyName:    f.FacultyName.Text(),
		FacultyProfile: f.FacultyProfile.Text(),
		JoiningYear:    f.JoiningYear.Text(),
		BirthDate:      f.BirthDate.Text(),
		Department:     f.Department.Text(),
		Mobile:         f.Mobile.Text(),
		FacultyEmail:   f.FacultyEmail.Text(),
	}
}
