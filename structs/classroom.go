package structs

type StudentAverage struct {
	StudentID   string  `json:"student_id"`
	StudentName string  `json:"student_name"`
	AverageMark float64 `json:"average_mark"`
}
