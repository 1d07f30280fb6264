package structs

type CategoryScore struct {
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	Max      float64 `json:"max"`
}

type InsightsReport struct {
	PatientID     string          `json:"patient_id"`
	Sex           string          `json:"sex"`
	Categories    []CategoryScore `json:"categories"`
	TotalScore    float64         `json:"total_score"`
	RecordedTotal float64         `json:"recorded_total"`
	ShareText     string          `json:"share_text"`
}
