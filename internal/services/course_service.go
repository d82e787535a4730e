package services

import (
	"fmt"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/repositories"
)

type CourseService interface {
	CreateCourse(course *models.Course) error
	GetCourseByID(id int) (*models.Course, error)
	ListCourses() ([]*models.Course, error)
	ListCoursesByLevel(level string) ([]*models.Course, error)
	ListCoursesBySemester(semester string) ([]*models.Course, error)
	DeleteCourse(id int) error
}

type courseService struct {
	repo       repositories.CourseRepository
	activities ActivityService
}

func NewCourseService(repo repositories.CourseRepository, activities ActivityService) CourseService {
	return &courseService{repo: repo, activities: activities}
}

func (s *courseService) CreateCourse(course *models.Course) error {
	existing, err := s.repo.GetByCode(course.CourseCode)
	if err != nil {
		return fmt.Errorf("course code lookup: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("course %s: %w", course.CourseCode, ErrDuplicate)
	}
	if err := s.repo.Create(course); err != nil {
		return fmt.Errorf("create course: %w", err)
	}
	s.activities.Log(nil, models.ActivityCourseAdded,
		fmt.Sprintf("course %s added", course.CourseCode), map[string]string{"course_code": course.CourseCode})
	return nil
}

func (s *courseService) GetCourseByID(id int) (*models.Course, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *courseService) ListCourses() ([]*models.Course, error) {
	return s.repo.List()
}

func (s *courseService) ListCoursesByLevel(level string) ([]*models.Course, error) {
	return s.repo.ListByLevel(level)
}

func (s *courseService) ListCoursesBySemester(semester string) ([]*models.Course, error) {
	return s.repo.ListBySemester(semester)
}

func (s *courseService) DeleteCourse(id int) error {
	if _, err := s.GetCourseByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
