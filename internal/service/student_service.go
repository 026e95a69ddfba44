package service

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-records-api/internal/models"
	appErrors "github.com/noah-isme/campus-records-api/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context) ([]models.Student, error)
	FindByID(ctx context.Context, id string) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentFields are the writable non-key student attributes. CGPA arrives as
// a JSON number or a numeric string; empty or absent means NULL.
type StudentFields struct {
	Name       *Scalar `json:"name" form:"name"`
	Profile    *Scalar `json:"profile" form:"profile"`
	BirthDate  *Scalar `json:"birth_date" form:"birth_date"`
	Mobile     *Scalar `json:"mobile" form:"mobile"`
	Email      *Scalar `json:"email" form:"email"`
	Department *Scalar `json:"department" form:"department"`
	CGPA       *Scalar `json:"cgpa" form:"cgpa"`
}

// CreateStudentRequest holds payload for creating students.
type CreateStudentRequest struct {
	ID string `json:"id" form:"id" validate:"required"`
	StudentFields
}

// UpdateStudentRequest holds payload for updating students. The ID comes from the path.
type UpdateStudentRequest struct {
	StudentFields
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	validator *validator.Validate
	store     recorder
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, validate *validator.Validate, logger *zap.Logger, metrics *MetricsService) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{repo: repo, validator: validate, store: newRecorder(logger, metrics, "Student not found")}
}

// List returns every student record.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	err := s.store.run(ctx, "student.list", msgFetchFailed, zap.Skip(), func(ctx context.Context) error {
		var err error
		students, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// Get returns one student record.
func (s *StudentService) Get(ctx context.Context, id string) (*models.Student, error) {
	var student *models.Student
	err := s.store.run(ctx, "student.get", msgFetchFailed, zap.String("student_id", id), func(ctx context.Context) error {
		var err error
		student, err = s.repo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create registers a new student. uploaded is the stored profile name or nil.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest, uploaded *string) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Invalid(err, "")
	}
	student, err := req.StudentFields.toModel(req.ID)
	if err != nil {
		return err
	}
	student.Profile = uploaded
	return s.store.run(ctx, "student.create", msgInsertFailed, zap.String("student_id", req.ID), func(ctx context.Context) error {
		return s.repo.Create(ctx, student)
	})
}

// Update overwrites every non-key attribute; the profile follows the same
// echo-back rule as faculty updates.
func (s *StudentService) Update(ctx context.Context, id string, req UpdateStudentRequest, uploaded *string) error {
	student, err := req.StudentFields.toModel(id)
	if err != nil {
		return err
	}
	if uploaded != nil {
		student.Profile = uploaded
	}
	return s.store.run(ctx, "student.update", msgUpdateFailed, zap.String("student_id", id), func(ctx context.Context) error {
		return s.repo.Update(ctx, student)
	})
}

// Delete removes a student. The stored profile file is left in place.
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.store.run(ctx, "student.delete", msgDeleteFailed, zap.String("student_id", id), func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}

func (f StudentFields) toModel(id string) (*models.Student, error) {
	cgpa, err := parseCGPA(f.CGPA)
	if err != nil {
		return nil, err
	}
	return &models.Student{
		ID:         id,
		Name:       f.Name.Text(),
		Profile:    f.Profile.Text(),
		BirthDate:  f.BirthDate.Text(),
		Mobile:     f.Mobile.Text(),
		Email:      f.Email.Text(),
		Department: f.Department.Text(),
		CGPA:       cgpa,
	}, nil
}

func parseCGPA(raw *Scalar) (*float64, error) {
	if raw == nil {
		return nil, nil
	}
	trimmed := strings.TrimSpace(string(*raw))
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err == nil && (math.IsNaN(value) || math.IsInf(value, 0)) {
		err = errors.New("cgpa must be finite")
	}
	if err != nil {
		return nil, appErrors.Invalid(err, "Invalid cgpa")
	}
	return &value, nil
}
