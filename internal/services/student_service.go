package services

import (
	"fmt"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
)

type StudentService interface {
	CreateStudent(student *models.Student) error
	GetStudentByID(id int) (*models.Student, error)
	ListStudents() ([]*models.Student, error)
	ListStudentsByLevel(level string) ([]*models.Student, error)
	UpdateStudent(student *models.Student) error
	DeleteStudent(id int) error
}

type studentService struct {
	repo       repositories.StudentRepository
	courses    repositories.CourseRepository
	activities ActivityService
}

func NewStudentService(
	repo repositories.StudentRepository,
	courses repositories.CourseRepository,
	activities ActivityService,
) StudentService {
	return &studentService{repo: repo, courses: courses, activities: activities}
}

func (s *studentService) CreateStudent(student *models.Student) error {
	existing, err := s.repo.GetByRegNo(student.RegNo)
	if err != nil {
		return fmt.Errorf("student reg no lookup: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("student %s: %w", student.RegNo, ErrDuplicate)
	}
	// курсы должны существовать до привязки
	for _, courseID := range student.CourseIDs {
		c, err := s.courses.GetByID(courseID)
		if err != nil {
			return err
		}
		if c == nil {
			return fmt.Errorf("course %d: %w", courseID, ErrNotFound)
		}
	}
	if err := s.repo.Create(student); err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	s.activities.Log(nil, models.ActivityStudentAdded,
		fmt.Sprintf("student %s added", student.RegNo), map[string]string{"reg_no": student.RegNo})
	return nil
}

func (s *studentService) GetStudentByID(id int) (*models.Student, error) {
	st, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, ErrNotFound
	}
	return st, nil
}

func (s *studentService) ListStudents() ([]*models.Student, error) {
	return s.repo.List()
}

func (s *studentService) ListStudentsByLevel(level string) ([]*models.Student, error) {
	return s.repo.ListByLevel(level)
}

func (s *studentService) UpdateStudent(student *models.Student) error {
	existing, err := s.GetStudentByID(student.ID)
	if err != nil {
		return err
	}
	if student.RegNo != existing.RegNo {
		dup, err := s.repo.GetByRegNo(student.RegNo)
		if err != nil {
			return err
		}
		if dup != nil {
			return fmt.Errorf("student %s: %w", student.RegNo, ErrDuplicate)
		}
	}
	if err := s.repo.Update(student); err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	return nil
}

func (s *studentService) DeleteStudent(id int) error {
	if _, err := s.GetStudentByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
