package models

type FoodIntake struct {
	ID        int64   `gorm:"column:id;primary_key" json:"id"`
	PatientID string  `gorm:"column:patient_id;index" json:"patient_id"`
	FoodName  string  `gorm:"column:food_name" json:"food_name"`
	Quantity  float64 `gorm:"column:quantity" json:"quantity"`
	Date      int64   `gorm:"column:date" json:"date"`
}

// TableName sets the insert table name for this struct type
func (f *FoodIntake) TableName() string {
	return "food_intake"
}
