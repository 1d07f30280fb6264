package router

import (
	authController "nutritrack-go-worker/controllers/auth"
	"nutritrack-go-worker/controllers/check"
	classroomController "nutritrack-go-worker/controllers/classroom"
	clinicianController "nutritrack-go-worker/controllers/clinician"
	currencyController "nutritrack-go-worker/controllers/currency"
	fruitController "nutritrack-go-worker/controllers/fruit"
	genaiController "nutritrack-go-worker/controllers/genai"
	nutricoachController "nutritrack-go-worker/controllers/nutricoach"
	patientController "nutritrack-go-worker/controllers/patient"
	postController "nutritrack-go-worker/controllers/post"
	questionnaireController "nutritrack-go-worker/controllers/questionnaire"
	"nutritrack-go-worker/controllers/readProbe"
	"nutritrack-go-worker/middlewares"
	"nutritrack-go-worker/services/auth"
	"nutritrack-go-worker/services/classroom"
	"nutritrack-go-worker/services/clinician"
	"nutritrack-go-worker/services/currency"
	"nutritrack-go-worker/services/fruit"
	"nutritrack-go-worker/services/genai"
	"nutritrack-go-worker/services/nutricoach"
	"nutritrack-go-worker/services/post"

	"github.com/gin-gonic/gin"
)

// Services holds everything the handlers need.
type Services struct {
	Auth       *auth.AuthService
	Fruit      *fruit.FruitService
	Generator  genai.Generator
	NutriCoach *nutricoach.NutriCoachService
	Clinician  *clinician.ClinicianService
	Currency   *currency.CurrencyService
	Post       *post.PostService
	Classroom  *classroom.ClassroomService
}

// NewServices builds every service from the loaded config.
func NewServices(publisher nutricoach.Publisher) Services {
	generator := genai.NewGeminiClient()
	return Services{
		Auth:       auth.NewAuthService(),
		Fruit:      fruit.NewFruitService(),
		Generator:  generator,
		NutriCoach: nutricoach.NewNutriCoachService(generator, publisher),
		Clinician:  clinician.NewClinicianService(generator),
		Currency:   currency.NewCurrencyService(),
		Post:       post.NewPostService(),
		Classroom:  classroom.NewClassroomService(),
	}
}

func Router(s Services) *gin.Engine {
	route := gin.Default()

	route.GET("/read-probe", readProbe.Probe)
	route.GET("/check-live", check.CheckAlive)

	authCtl := &authController.AuthController{Service: s.Auth}
	patientCtl := &patientController.PatientController{}
	questionnaireCtl := &questionnaireController.QuestionnaireController{}
	fruitCtl := &fruitController.FruitController{Service: s.Fruit}
	coachCtl := &nutricoachController.NutriCoachController{Service: s.NutriCoach}
	genaiCtl := &genaiController.GenAIController{Generator: s.Generator}
	clinicianCtl := &clinicianController.ClinicianController{Service: s.Clinician}
	currencyCtl := &currencyController.CurrencyController{Service: s.Currency}
	postCtl := &postController.PostController{Service: s.Post}
	classroomCtl := &classroomController.ClassroomController{Service: s.Classroom}

	v1 := route.Group("/api/v1")
	{
		v1.GET("/auth/user-ids", authCtl.UserIDs)
		v1.POST("/auth/login", authCtl.Login)
		v1.POST("/auth/claim", authCtl.Claim)

		v1.GET("/fruits/:name", fruitCtl.Get)
		v1.GET("/currency/convert", currencyCtl.Convert)
		v1.POST("/genai/prompt", genaiCtl.Prompt)

		v1.GET("/posts", postCtl.All)
		v1.POST("/posts", postCtl.Create)
		v1.DELETE("/posts", postCtl.DeleteAll)

		v1.POST("/classroom/login", classroomCtl.Login)
		v1.POST("/classroom/students", classroomCtl.AddStudent)
		v1.GET("/classroom/students", classroomCtl.Students)
		v1.GET("/classroom/students/:id", classroomCtl.Student)
		v1.POST("/classroom/students/:id/quiz", classroomCtl.SubmitQuiz)
		v1.GET("/classroom/students/:id/attempts", classroomCtl.StudentAttempts)
		v1.GET("/classroom/attempts", classroomCtl.Attempts)
		v1.GET("/classroom/averages", classroomCtl.Averages)

		v1.POST("/clinician/login", clinicianCtl.Login)
	}

	patient := v1.Group("/", middlewares.Auth(s.Auth))
	{
		patient.POST("/auth/logout", authCtl.Logout)
		patient.GET("/auth/route", authCtl.LastRoute)
		patient.PUT("/auth/route", authCtl.SaveLastRoute)

		patient.GET("/patients/me", patientCtl.Me)
		patient.GET("/insights", patientCtl.Insights)

		patient.POST("/questionnaire", questionnaireCtl.Save)
		patient.GET("/questionnaire", questionnaireCtl.Latest)
		patient.GET("/food-intakes", questionnaireCtl.FoodIntakes)

		patient.GET("/nutricoach/fruit-score", coachCtl.FruitScore)
		patient.POST("/nutricoach/tips", coachCtl.GenerateTip)
		patient.POST("/nutricoach/tips/async", coachCtl.RequestTip)
		patient.GET("/nutricoach/tips", coachCtl.Tips)
	}

	clinicianGroup := v1.Group("/clinician", middlewares.Clinician(s.Clinician.Key))
	{
		clinicianGroup.GET("/averages", clinicianCtl.AverageScores)
		clinicianGroup.GET("/patterns", clinicianCtl.DataPatterns)
	}

	return route
}
