package insights

import (
	"math"
	"nutritrack-go-worker/models"
	"testing"
)

func float(v float64) *float64 {
	return &v
}

func TestCap(t *testing.T) {
	cases := []struct {
		score, ceiling, want float64
	}{
		{12, 10, 10},
		{7.5, 10, 7.5},
		{5, 5, 5},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := Cap(c.score, c.ceiling); got != c.want {
			t.Errorf("Cap(%v, %v) = %v, want %v", c.score, c.ceiling, got, c.want)
		}
	}
}

func TestRescaleUnderLimitKeepsCappedScores(t *testing.T) {
	scores := []float64{12, 4, 3}
	ceilings := []float64{10, 5, 5}

	got := Rescale(scores, ceilings)
	want := []float64{10, 4, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("score %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRescaleOverLimitSumsToMaxTotal(t *testing.T) {
	scores := []float64{80, 70, 90}
	ceilings := []float64{60, 60, 60}

	got := Rescale(scores, ceilings)
	if total := Sum(got); math.Abs(total-MaxTotal) > 1e-9 {
		t.Fatalf("sum = %v, want %v", total, MaxTotal)
	}
	for i, score := range got {
		want := 60 * MaxTotal / 180
		if math.Abs(score-want) > 1e-9 {
			t.Errorf("score %d = %v, want %v", i, score, want)
		}
	}
}

func TestRescaleAllZero(t *testing.T) {
	got := Rescale([]float64{0, 0}, []float64{5, 10})
	if Sum(got) != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestCategoryCeilingsSumToMaxTotal(t *testing.T) {
	if len(Categories) != 13 {
		t.Fatalf("categories = %d, want 13", len(Categories))
	}
	total := 0.0
	for _, c := range Categories {
		total += c.Max
	}
	if total != MaxTotal {
		t.Fatalf("ceilings sum to %v", total)
	}
}

func TestSexValue(t *testing.T) {
	male, female := float(3), float(4)
	if got := SexValue("Male", male, female); got != 3 {
		t.Errorf("male = %v", got)
	}
	if got := SexValue("Female", male, female); got != 4 {
		t.Errorf("female = %v", got)
	}
	if got := SexValue("Other", male, nil); got != 0 {
		t.Errorf("null female = %v", got)
	}
}

func TestBuild(t *testing.T) {
	entity := &models.Patient{
		UserID:                   "12",
		Sex:                      "Male",
		HeifaTotalScoreMale:      float(61.5),
		VegetablesHeifaScoreMale: float(14),
		FruitHeifaScoreMale:      float(8.333),
		WaterHeifaScoreMale:      float(2.5),
		FruitHeifaScoreFemale:    float(1),
	}

	report := Build(entity)
	if report.RecordedTotal != 61.5 {
		t.Errorf("recorded total = %v", report.RecordedTotal)
	}
	scores := map[string]float64{}
	for _, c := range report.Categories {
		scores[c.Category] = c.Score
	}
	if scores["Vegetables"] != 10 {
		t.Errorf("vegetables = %v, want capped 10", scores["Vegetables"])
	}
	if scores["Fruits"] != 8.33 {
		t.Errorf("fruits = %v", scores["Fruits"])
	}
	if report.TotalScore != 20.83 {
		t.Errorf("total = %v", report.TotalScore)
	}
	if report.ShareText != "Hi, my total food quality score is 61.50/100" {
		t.Errorf("share text = %q", report.ShareText)
	}
}
