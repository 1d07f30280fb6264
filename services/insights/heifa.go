package insights

import (
	"nutritrack-go-worker/enums"
	"nutritrack-go-worker/models"
)

// MaxTotal is the ceiling of the summed HEIFA score.
const MaxTotal = 100.0

type category struct {
	Name   string
	Max    float64
	Male   func(*models.Patient) *float64
	Female func(*models.Patient) *float64
}

// Categories are listed in display order; their ceilings sum to MaxTotal.
var Categories = []category{
	{"Vegetables", 10, func(p *models.Patient) *float64 { return p.VegetablesHeifaScoreMale }, func(p *models.Patient) *float64 { return p.VegetablesHeifaScoreFemale }},
	{"Fruits", 10, func(p *models.Patient) *float64 { return p.FruitHeifaScoreMale }, func(p *models.Patient) *float64 { return p.FruitHeifaScoreFemale }},
	{"Grains & Cereals", 5, func(p *models.Patient) *float64 { return p.GrainsAndCerealsHeifaScoreMale }, func(p *models.Patient) *float64 { return p.GrainsAndCerealsHeifaScoreFemale }},
	{"Whole Grains", 5, func(p *models.Patient) *float64 { return p.WholeGrainsHeifaScoreMale }, func(p *models.Patient) *float64 { return p.WholeGrainsHeifaScoreFemale }},
	{"Meat & Alternatives", 10, func(p *models.Patient) *float64 { return p.MeatAndAlternativesHeifaScoreMale }, func(p *models.Patient) *float64 { return p.MeatAndAlternativesHeifaScoreFemale }},
	{"Dairy", 10, func(p *models.Patient) *float64 { return p.DairyAndAlternativesHeifaScoreMale }, func(p *models.Patient) *float64 { return p.DairyAndAlternativesHeifaScoreFemale }},
	{"Water", 5, func(p *models.Patient) *float64 { return p.WaterHeifaScoreMale }, func(p *models.Patient) *float64 { return p.WaterHeifaScoreFemale }},
	{"Unsaturated Fats", 5, func(p *models.Patient) *float64 { return p.UnsaturatedFatHeifaScoreMale }, func(p *models.Patient) *float64 { return p.UnsaturatedFatHeifaScoreFemale }},
	{"Saturated Fats", 5, func(p *models.Patient) *float64 { return p.SaturatedFatHeifaScoreMale }, func(p *models.Patient) *float64 { return p.SaturatedFatHeifaScoreFemale }},
	{"Sodium", 10, func(p *models.Patient) *float64 { return p.SodiumHeifaScoreMale }, func(p *models.Patient) *float64 { return p.SodiumHeifaScoreFemale }},
	{"Sugar", 10, func(p *models.Patient) *float64 { return p.SugarHeifaScoreMale }, func(p *models.Patient) *float64 { return p.SugarHeifaScoreFemale }},
	{"Alcohol", 5, func(p *models.Patient) *float64 { return p.AlcoholHeifaScoreMale }, func(p *models.Patient) *float64 { return p.AlcoholHeifaScoreFemale }},
	{"Discretionary Foods", 10, func(p *models.Patient) *float64 { return p.DiscretionaryHeifaScoreMale }, func(p *models.Patient) *float64 { return p.DiscretionaryHeifaScoreFemale }},
}

// Cap returns min(score, ceiling).
func Cap(score, ceiling float64) float64 {
	if score > ceiling {
		return ceiling
	}
	return score
}

// Rescale caps every score at its ceiling. When the capped sum exceeds
// MaxTotal every score is scaled by MaxTotal/sum, otherwise the capped
// scores are returned unchanged.
func Rescale(scores, ceilings []float64) []float64 {
	capped := make([]float64, len(scores))
	sum := 0.0
	for i, score := range scores {
		capped[i] = Cap(score, ceilings[i])
		sum += capped[i]
	}
	if sum <= MaxTotal {
		return capped
	}
	factor := MaxTotal / sum
	for i := range capped {
		capped[i] *= factor
	}
	return capped
}

func Sum(scores []float64) float64 {
	total := 0.0
	for _, score := range scores {
		total += score
	}
	return total
}

// SexValue picks the male column for "Male" and the female column otherwise.
// NULL reads as 0.
func SexValue(sex string, male, female *float64) float64 {
	value := female
	if sex == enums.SexMale {
		value = male
	}
	if value == nil {
		return 0
	}
	return *value
}
