package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dojocrm/internal/domain"
	"dojocrm/internal/domain/entities"
	"dojocrm/internal/ports/output"
)

type StudentService struct {
	studentRepo output.StudentRepository
}

func NewStudentService(studentRepo output.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) CreateStudent(ctx context.Context, student *entities.Student) error {
	if strings.TrimSpace(student.Name) == "" {
		return domain.ErrNameRequired
	}
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	student.Active = true
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (s *StudentService) GetStudent(ctx context.Context, id string) (*entities.Student, error) {
	return s.studentRepo.FindByID(ctx, id)
}

func (s *StudentService) ListStudents(ctx context.Context) ([]entities.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

func (s *StudentService) UpdateStudent(ctx context.Context, student *entities.Student) error {
	if strings.TrimSpace(student.Name) == "" {
		return domain.ErrNameRequired
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return domain.ErrStudentNotFound
		}
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrStudentNotFound) {
			return domain.ErrStudentNotFound
		}
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}
