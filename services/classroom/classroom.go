package classroom

import (
	"errors"
	"fmt"
	"math/rand"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/models"
	"nutritrack-go-worker/structs"
	"strings"
	"time"

	"github.com/jinzhu/gorm"
)

// QuizDateLayout renders dd/MM/yyyy.
const QuizDateLayout = "02/01/2006"

var (
	ErrStudentNotFound   = errors.New("student not found")
	ErrStudentExists     = errors.New("student id already registered")
	ErrInvalidCredential = errors.New("Incorrect Credentials")
)

type ClassroomService struct {
	Now  func() time.Time
	Rand *rand.Rand
}

func NewClassroomService() *ClassroomService {
	return &ClassroomService{
		Now:  time.Now,
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *ClassroomService) AddStudent(param structs.StudentParam) (*models.Student, error) {
	studentID := strings.TrimSpace(param.StudentID)
	if _, err := c.Student(studentID); err == nil {
		return nil, ErrStudentExists
	} else if !errors.Is(err, ErrStudentNotFound) {
		return nil, err
	}
	entity := models.Student{
		StudentID:       studentID,
		StudentName:     strings.TrimSpace(param.StudentName),
		StudentPassword: param.StudentPassword,
	}
	if err := database.DB.Create(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// Login requires the exact stored password.
func (c *ClassroomService) Login(param structs.StudentLoginParam) (*models.Student, error) {
	entity, err := c.Student(param.StudentID)
	if errors.Is(err, ErrStudentNotFound) {
		return nil, ErrInvalidCredential
	}
	if err != nil {
		return nil, err
	}
	if entity.StudentPassword != param.StudentPassword {
		return nil, ErrInvalidCredential
	}
	return entity, nil
}

func (c *ClassroomService) Student(studentID string) (*models.Student, error) {
	var entity models.Student
	if err := database.DB.Where("student_id = ?", studentID).First(&entity).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &entity, nil
}

func (c *ClassroomService) Students() ([]models.Student, error) {
	students := []models.Student{}
	err := database.DB.Order("id").Find(&students).Error
	return students, err
}

// Mark scores the weekly quiz: q1 and q3 are true statements, q2 is false.
func Mark(answer structs.QuizAnswerParam) float64 {
	mark := 0.0
	if answer.Q1 {
		mark++
	}
	if !answer.Q2 {
		mark++
	}
	if answer.Q3 {
		mark++
	}
	return mark
}

func (c *ClassroomService) SubmitQuiz(studentID string, answer structs.QuizAnswerParam) (*models.QuizAttempt, error) {
	if _, err := c.Student(studentID); err != nil {
		return nil, err
	}
	attempt := models.QuizAttempt{
		StudentID: studentID,
		QuizID:    fmt.Sprintf("Qz%d", 1000+c.Rand.Intn(8999)),
		QuizDate:  c.Now().Format(QuizDateLayout),
		FinalMark: Mark(answer),
	}
	if err := database.DB.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (c *ClassroomService) Attempts() ([]models.QuizAttempt, error) {
	attempts := []models.QuizAttempt{}
	err := database.DB.Order("id").Find(&attempts).Error
	return attempts, err
}

func (c *ClassroomService) StudentAttempts(studentID string) ([]models.QuizAttempt, error) {
	attempts := []models.QuizAttempt{}
	err := database.DB.Where("student_id = ?", studentID).Order("id").Find(&attempts).Error
	return attempts, err
}

// Averages lists students that have at least one attempt with their mean mark.
func (c *ClassroomService) Averages() ([]structs.StudentAverage, error) {
	averages := []structs.StudentAverage{}
	err := database.DB.Table("students").
		Select("students.student_id, students.student_name, AVG(quiz_attempts.final_mark) AS average_mark").
		Joins("INNER JOIN quiz_attempts ON quiz_attempts.student_id = students.student_id").
		Group("students.student_id, students.student_name").
		Order("students.student_id").
		Scan(&averages).Error
	return averages, err
}
