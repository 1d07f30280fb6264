package models

type NutriCoachTip struct {
	ID        int64  `gorm:"column:id;primary_key" json:"id"`
	PatientID string `gorm:"column:patient_id;index" json:"patient_id"`
	Tip       string `gorm:"column:tip;type:text" json:"tip"`
	Timestamp int64  `gorm:"column:timestamp" json:"timestamp"`
}

// TableName sets the insert table name for this struct type
func (n *NutriCoachTip) TableName() string {
	return "nutri_coach_tips"
}
