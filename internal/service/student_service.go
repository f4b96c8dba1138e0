package service

import (
	"context"

	"github.com/google/uuid"

	"feedesk/internal/domain"
	"feedesk/internal/port"
)

// CreateStudentInput is the DTO for enrolling a student.
type CreateStudentInput struct {
	AdmissionNo   string
	FullName      string
	ClassID       uuid.UUID
	GuardianName  string
	GuardianEmail string
	GuardianPhone string
}

// StudentService manages student enrollment records.
type StudentService interface {
	Create(ctx context.Context, input *CreateStudentInput) (*domain.Student, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error)
	List(ctx context.Context, classID *uuid.UUID, offset, limit int) ([]domain.Student, int, error)
}

type studentService struct {
	studentRepo port.StudentRepository
	classRepo   port.ClassRepository
}

// NewStudentService creates a new StudentService implementation.
func NewStudentService(studentRepo port.StudentRepository, classRepo port.ClassRepository) StudentService {
	return &studentService{studentRepo: studentRepo, classRepo: classRepo}
}

func (s *studentService) Create(ctx context.Context, input *CreateStudentInput) (*domain.Student, error) {
	if _, err := s.classRepo.GetByID(ctx, input.ClassID); err != nil {
		return nil, err
	}
	student := &domain.Student{
		ID:            uuid.New(),
		AdmissionNo:   input.AdmissionNo,
		FullName:      input.FullName,
		ClassID:       input.ClassID,
		GuardianName:  input.GuardianName,
		GuardianEmail: input.GuardianEmail,
		GuardianPhone: input.GuardianPhone,
		IsActive:      true,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

func (s *studentService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) List(ctx context.Context, classID *uuid.UUID, offset, limit int) ([]domain.Student, int, error) {
	return s.studentRepo.List(ctx, classID, offset, limit)
}
