package enums

const (
	ProcessSingle = "SINGLE"
	ProcessAll    = "ALL"

	SexMale   = "Male"
	SexFemale = "Female"

	QueuePatientImport = "patient-import"
	QueueNutriCoachTip = "nutricoach-tip"
	QueuePostSync      = "post-sync"

	JobInit     = "schedule.go.job.init"
	JobReceived = "schedule.go.job.received"
	JobImport   = "schedule.go.job.patient-import"
	JobTip      = "schedule.go.job.nutricoach-tip"
	JobPostSync = "schedule.go.job.post-sync"

	HealthDevotee        = "Health Devotee"
	MindfulEater         = "Mindful Eater"
	WellnessStriver      = "Wellness Striver"
	BalanceSeeker        = "Balance Seeker"
	HealthProcrastinator = "Health Procrastinator"
	FoodCarefree         = "Food Carefree"
)

var Personas = []string{
	HealthDevotee,
	MindfulEater,
	WellnessStriver,
	BalanceSeeker,
	HealthProcrastinator,
	FoodCarefree,
}

var FoodCategories = []string{
	"Fruits", "Vegetables", "Grains",
	"Red Meat", "Seafood", "Poultry",
	"Fish", "Eggs", "Nuts/Seeds",
}
