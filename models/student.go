package models

type Student struct {
	ID              int64  `gorm:"column:id;primary_key" json:"id"`
	StudentID       string `gorm:"column:student_id;unique_index" json:"student_id"`
	StudentName     string `gorm:"column:student_name" json:"student_name"`
	StudentPassword string `gorm:"column:student_password" json:"-"`
}

// TableName sets the insert table name for this struct type
func (s *Student) TableName() string {
	return "students"
}

type QuizAttempt struct {
	ID        int64   `gorm:"column:id;primary_key" json:"id"`
	StudentID string  `gorm:"column:student_id;index" json:"student_id"`
	QuizID    string  `gorm:"column:quiz_id" json:"quiz_id"`
	QuizDate  string  `gorm:"column:quiz_date" json:"quiz_date"`
	FinalMark float64 `gorm:"column:final_mark" json:"final_mark"`
}

// TableName sets the insert table name for this struct type
func (q *QuizAttempt) TableName() string {
	return "quiz_attempts"
}
