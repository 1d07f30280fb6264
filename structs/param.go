package structs

// JobQueueParam is the body of every message consumed by the worker.
type JobQueueParam struct {
	Type      string `json:"type" form:"type"`
	PatientID string `json:"patient_id" form:"patient_id"`
	TaskID    uint   `json:"task_id" form:"task_id"`
	Result    string `json:"result" form:"result"`
	QueueType string `json:"queue_type" form:"queue_type"`
}

type MismatchQueueResponse struct {
	TaskId uint   `json:"task_id"`
	Queue  string `json:"queue"`
}

type ErrorModel struct {
	PatientID    string `json:"patient_id,omitempty"`
	ErrorMessage string `json:"error_message"`
}

type LoginParam struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ClaimParam struct {
	UserID          string `json:"user_id"`
	PhoneNumber     string `json:"phone_number"`
	Name            string `json:"name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type RouteParam struct {
	Route string `json:"route"`
}

type QuestionnaireParam struct {
	SelectedFoodCategories []string `json:"selected_food_categories"`
	Persona                string   `json:"persona"`
	BiggestMealTime        string   `json:"biggest_meal_time"`
	SleepTime              string   `json:"sleep_time"`
	WakeUpTime             string   `json:"wake_up_time"`
}

type PromptParam struct {
	Prompt string `json:"prompt" binding:"required"`
}

type ConvertParam struct {
	Base   string `json:"base" form:"base"`
	Target string `json:"target" form:"target"`
	Amount string `json:"amount" form:"amount"`
}

type StudentParam struct {
	StudentID       string `json:"student_id" binding:"required"`
	StudentName     string `json:"student_name" binding:"required"`
	StudentPassword string `json:"student_password" binding:"required"`
}

type StudentLoginParam struct {
	StudentID       string `json:"student_id" binding:"required"`
	StudentPassword string `json:"student_password" binding:"required"`
}

// QuizAnswerParam carries the three checkbox answers of the weekly quiz.
type QuizAnswerParam struct {
	Q1 bool `json:"q1"`
	Q2 bool `json:"q2"`
	Q3 bool `json:"q3"`
}
