package clinician

import (
	"context"
	"errors"
	"fmt"
	"nutritrack-go-worker/database"
	"nutritrack-go-worker/models"
	"strings"
	"testing"
)

type fakeGenerator struct {
	prompt string
	text   string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.text, nil
}

func float(v float64) *float64 {
	return &v
}

func setup(t *testing.T) {
	t.Helper()
	db, err := database.OpenMemory()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
}

func seed(t *testing.T, patients ...models.Patient) {
	t.Helper()
	for i := range patients {
		if err := database.DB.Create(&patients[i]).Error; err != nil {
			t.Fatal(err)
		}
	}
}

func TestLogin(t *testing.T) {
	service := &ClinicianService{Key: "dollar-entry-apples"}
	if err := service.Login("dollar-entry-apples"); err != nil {
		t.Fatal(err)
	}
	if err := service.Login("Dollar-entry-apples"); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("err = %v", err)
	}
	if err := (&ClinicianService{}).Login(""); !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("empty key err = %v", err)
	}
}

func TestAverageScores(t *testing.T) {
	setup(t)
	service := &ClinicianService{}

	scores, err := service.AverageScores()
	if err != nil {
		t.Fatal(err)
	}
	if scores.Male != 0 || scores.Female != 0 {
		t.Fatalf("empty scores = %+v", scores)
	}

	seed(t,
		models.Patient{UserID: "1", Sex: "Male", HeifaTotalScoreMale: float(60), HeifaTotalScoreFemale: float(99)},
		models.Patient{UserID: "2", Sex: "Male", HeifaTotalScoreMale: float(70)},
		models.Patient{UserID: "3", Sex: "Male"},
		models.Patient{UserID: "4", Sex: "Female", HeifaTotalScoreFemale: float(50)},
	)
	scores, err = service.AverageScores()
	if err != nil {
		t.Fatal(err)
	}
	if scores.Male != 65 || scores.Female != 50 {
		t.Fatalf("scores = %+v", scores)
	}
}

func TestSplitPatterns(t *testing.T) {
	got := SplitPatterns("\nFirst pattern.\n\n  \n\nSecond pattern.\n\nThird.\n\nFourth.")
	want := []string{"First pattern.", "Second pattern.", "Third."}
	if len(got) != len(want) {
		t.Fatalf("got %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("pattern %d = %q", i, got[i])
		}
	}
	if len(SplitPatterns("   ")) != 0 {
		t.Fatal("blank response produced patterns")
	}
}

func TestDataPatterns(t *testing.T) {
	setup(t)
	generator := &fakeGenerator{text: "A.\n\nB.\n\nC."}
	service := &ClinicianService{Generator: generator}

	if _, err := service.DataPatterns(context.Background()); !errors.Is(err, ErrNoPatients) {
		t.Fatalf("err = %v", err)
	}

	for i := 0; i < 35; i++ {
		seed(t, models.Patient{UserID: fmt.Sprintf("%02d", i), Sex: "Female", FruitHeifaScoreFemale: float(2)})
	}
	patterns, err := service.DataPatterns(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(patterns) != 3 {
		t.Fatalf("patterns = %q", patterns)
	}
	if !strings.Contains(generator.prompt, "Patient Data (30 records):") || !strings.Contains(generator.prompt, "FruitF=2") {
		t.Fatalf("prompt = %s", generator.prompt)
	}

	generator.text = "\n\n"
	var patternsErr *PatternsError
	if _, err := service.DataPatterns(context.Background()); !errors.As(err, &patternsErr) {
		t.Fatalf("err = %v", err)
	}
}

func TestDataPatternsNumericOrder(t *testing.T) {
	setup(t)
	generator := &fakeGenerator{text: "A.\n\nB.\n\nC."}
	service := &ClinicianService{Generator: generator}

	fruit := map[int]float64{2: 22, 9: 9, 31: 31}
	for i := 35; i >= 1; i-- {
		score, ok := fruit[i]
		if !ok {
			score = 1
		}
		seed(t, models.Patient{UserID: fmt.Sprint(i), Sex: "Female", FruitHeifaScoreFemale: float(score)})
	}

	if _, err := service.DataPatterns(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(generator.prompt, "P2: Sex=Female, TotalM=-, TotalF=-, FruitM=-, FruitF=22,") {
		t.Fatalf("second record is not patient 2: %s", generator.prompt)
	}
	if !strings.Contains(generator.prompt, "FruitF=9,") {
		t.Fatal("patient 9 missing from the first 30")
	}
	if strings.Contains(generator.prompt, "FruitF=31,") {
		t.Fatal("patient 31 included in the first 30")
	}
}
