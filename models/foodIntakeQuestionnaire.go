package models

import "strings"

// FoodIntakeQuestionnaire holds one patient's self reported preferences.
// Selected categories are stored comma separated.
type FoodIntakeQuestionnaire struct {
	ID                     int64  `gorm:"column:id;primary_key" json:"id"`
	PatientID              string `gorm:"column:patient_id;index" json:"patient_id"`
	SelectedFoodCategories string `gorm:"column:selected_food_categories" json:"selected_food_categories"`
	Persona                string `gorm:"column:persona" json:"persona"`
	BiggestMealTime        string `gorm:"column:biggest_meal_time" json:"biggest_meal_time"`
	SleepTime              string `gorm:"column:sleep_time" json:"sleep_time"`
	WakeUpTime             string `gorm:"column:wake_up_time" json:"wake_up_time"`
	Date                   int64  `gorm:"column:date" json:"date"`
}

// TableName sets the insert table name for this struct type
func (f *FoodIntakeQuestionnaire) TableName() string {
	return "food_intake_questionnaire"
}

func (f *FoodIntakeQuestionnaire) Categories() []string {
	if f.SelectedFoodCategories == "" {
		return nil
	}
	return strings.Split(f.SelectedFoodCategories, ",")
}
