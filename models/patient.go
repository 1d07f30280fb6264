package models

// Patient is one row of the bundled nutrition CSV. Numeric columns are nullable,
// an unparseable CSV cell is stored as NULL.
type Patient struct {
	UserID                                           string   `gorm:"column:user_id;primary_key" json:"user_id"`
	PhoneNumber                                      string   `gorm:"column:phone_number" json:"phone_number"`
	Name                                             *string  `gorm:"column:name" json:"name"`
	Password                                         *string  `gorm:"column:password" json:"-"`
	Sex                                              string   `gorm:"column:sex" json:"sex"`
	HeifaTotalScoreMale                              *float64 `gorm:"column:heifa_total_score_male" json:"heifa_total_score_male"`
	HeifaTotalScoreFemale                            *float64 `gorm:"column:heifa_total_score_female" json:"heifa_total_score_female"`
	DiscretionaryHeifaScoreMale                      *float64 `gorm:"column:discretionary_heifa_score_male" json:"discretionary_heifa_score_male"`
	DiscretionaryHeifaScoreFemale                    *float64 `gorm:"column:discretionary_heifa_score_female" json:"discretionary_heifa_score_female"`
	DiscretionaryServeSize                           *float64 `gorm:"column:discretionary_serve_size" json:"discretionary_serve_size"`
	VegetablesHeifaScoreMale                         *float64 `gorm:"column:vegetables_heifa_score_male" json:"vegetables_heifa_score_male"`
	VegetablesHeifaScoreFemale                       *float64 `gorm:"column:vegetables_heifa_score_female" json:"vegetables_heifa_score_female"`
	VegetablesWithLegumesAllocatedServeSize          *float64 `gorm:"column:vegetables_with_legumes_allocated_serve_size" json:"vegetables_with_legumes_allocated_serve_size"`
	LegumesAllocatedVegetables                       *float64 `gorm:"column:legumes_allocated_vegetables" json:"legumes_allocated_vegetables"`
	VegetablesVariationsScore                        *float64 `gorm:"column:vegetables_variations_score" json:"vegetables_variations_score"`
	VegetablesCruciferous                            *float64 `gorm:"column:vegetables_cruciferous" json:"vegetables_cruciferous"`
	VegetablesTuberAndBulb                           *float64 `gorm:"column:vegetables_tuber_and_bulb" json:"vegetables_tuber_and_bulb"`
	VegetablesOther                                  *float64 `gorm:"column:vegetables_other" json:"vegetables_other"`
	Legumes                                          *float64 `gorm:"column:legumes" json:"legumes"`
	VegetablesGreen                                  *float64 `gorm:"column:vegetables_green" json:"vegetables_green"`
	VegetablesRedAndOrange                           *float64 `gorm:"column:vegetables_red_and_orange" json:"vegetables_red_and_orange"`
	FruitHeifaScoreMale                              *float64 `gorm:"column:fruit_heifa_score_male" json:"fruit_heifa_score_male"`
	FruitHeifaScoreFemale                            *float64 `gorm:"column:fruit_heifa_score_female" json:"fruit_heifa_score_female"`
	FruitServeSize                                   *float64 `gorm:"column:fruit_serve_size" json:"fruit_serve_size"`
	FruitVariationsScore                             *float64 `gorm:"column:fruit_variations_score" json:"fruit_variations_score"`
	FruitPome                                        *float64 `gorm:"column:fruit_pome" json:"fruit_pome"`
	FruitTropicalAndSubtropical                      *float64 `gorm:"column:fruit_tropical_and_subtropical" json:"fruit_tropical_and_subtropical"`
	FruitBerry                                       *float64 `gorm:"column:fruit_berry" json:"fruit_berry"`
	FruitStone                                       *float64 `gorm:"column:fruit_stone" json:"fruit_stone"`
	FruitCitrus                                      *float64 `gorm:"column:fruit_citrus" json:"fruit_citrus"`
	FruitOther                                       *float64 `gorm:"column:fruit_other" json:"fruit_other"`
	GrainsAndCerealsHeifaScoreMale                   *float64 `gorm:"column:grains_and_cereals_heifa_score_male" json:"grains_and_cereals_heifa_score_male"`
	GrainsAndCerealsHeifaScoreFemale                 *float64 `gorm:"column:grains_and_cereals_heifa_score_female" json:"grains_and_cereals_heifa_score_female"`
	GrainsAndCerealsServeSize                        *float64 `gorm:"column:grains_and_cereals_serve_size" json:"grains_and_cereals_serve_size"`
	GrainsAndCerealsNonWholeGrains                   *float64 `gorm:"column:grains_and_cereals_non_whole_grains" json:"grains_and_cereals_non_whole_grains"`
	WholeGrainsHeifaScoreMale                        *float64 `gorm:"column:whole_grains_heifa_score_male" json:"whole_grains_heifa_score_male"`
	WholeGrainsHeifaScoreFemale                      *float64 `gorm:"column:whole_grains_heifa_score_female" json:"whole_grains_heifa_score_female"`
	WholeGrainsServeSize                             *float64 `gorm:"column:whole_grains_serve_size" json:"whole_grains_serve_size"`
	MeatAndAlternativesHeifaScoreMale                *float64 `gorm:"column:meat_and_alternatives_heifa_score_male" json:"meat_and_alternatives_heifa_score_male"`
	MeatAndAlternativesHeifaScoreFemale              *float64 `gorm:"column:meat_and_alternatives_heifa_score_female" json:"meat_and_alternatives_heifa_score_female"`
	MeatAndAlternativesWithLegumesAllocatedServeSize *float64 `gorm:"column:meat_and_alternatives_with_legumes_allocated_serve_size" json:"meat_and_alternatives_with_legumes_allocated_serve_size"`
	LegumesAllocatedMeatAndAlternatives              *float64 `gorm:"column:legumes_allocated_meat_and_alternatives" json:"legumes_allocated_meat_and_alternatives"`
	DairyAndAlternativesHeifaScoreMale               *float64 `gorm:"column:dairy_and_alternatives_heifa_score_male" json:"dairy_and_alternatives_heifa_score_male"`
	DairyAndAlternativesHeifaScoreFemale             *float64 `gorm:"column:dairy_and_alternatives_heifa_score_female" json:"dairy_and_alternatives_heifa_score_female"`
	DairyAndAlternativesServeSize                    *float64 `gorm:"column:dairy_and_alternatives_serve_size" json:"dairy_and_alternatives_serve_size"`
	SodiumHeifaScoreMale                             *float64 `gorm:"column:sodium_heifa_score_male" json:"sodium_heifa_score_male"`
	SodiumHeifaScoreFemale                           *float64 `gorm:"column:sodium_heifa_score_female" json:"sodium_heifa_score_female"`
	SodiumMgMilligrams                               *float64 `gorm:"column:sodium_mg_milligrams" json:"sodium_mg_milligrams"`
	AlcoholHeifaScoreMale                            *float64 `gorm:"column:alcohol_heifa_score_male" json:"alcohol_heifa_score_male"`
	AlcoholHeifaScoreFemale                          *float64 `gorm:"column:alcohol_heifa_score_female" json:"alcohol_heifa_score_female"`
	AlcoholStandardDrinks                            *float64 `gorm:"column:alcohol_standard_drinks" json:"alcohol_standard_drinks"`
	WaterHeifaScoreMale                              *float64 `gorm:"column:water_heifa_score_male" json:"water_heifa_score_male"`
	WaterHeifaScoreFemale                            *float64 `gorm:"column:water_heifa_score_female" json:"water_heifa_score_female"`
	Water                                            *float64 `gorm:"column:water" json:"water"`
	WaterTotalMl                                     *float64 `gorm:"column:water_total_ml" json:"water_total_ml"`
	BeverageTotalMl                                  *float64 `gorm:"column:beverage_total_ml" json:"beverage_total_ml"`
	SugarHeifaScoreMale                              *float64 `gorm:"column:sugar_heifa_score_male" json:"sugar_heifa_score_male"`
	SugarHeifaScoreFemale                            *float64 `gorm:"column:sugar_heifa_score_female" json:"sugar_heifa_score_female"`
	Sugar                                            *float64 `gorm:"column:sugar" json:"sugar"`
	SaturatedFatHeifaScoreMale                       *float64 `gorm:"column:saturated_fat_heifa_score_male" json:"saturated_fat_heifa_score_male"`
	SaturatedFatHeifaScoreFemale                     *float64 `gorm:"column:saturated_fat_heifa_score_female" json:"saturated_fat_heifa_score_female"`
	SaturatedFat                                     *float64 `gorm:"column:saturated_fat" json:"saturated_fat"`
	UnsaturatedFatHeifaScoreMale                     *float64 `gorm:"column:unsaturated_fat_heifa_score_male" json:"unsaturated_fat_heifa_score_male"`
	UnsaturatedFatHeifaScoreFemale                   *float64 `gorm:"column:unsaturated_fat_heifa_score_female" json:"unsaturated_fat_heifa_score_female"`
	UnsaturatedFatServeSize                          *float64 `gorm:"column:unsaturated_fat_serve_size" json:"unsaturated_fat_serve_size"`
	HasCompletedInitialQuestionnaire                 bool     `gorm:"column:has_completed_initial_questionnaire" json:"has_completed_initial_questionnaire"`
}

// TableName sets the insert table name for this struct type
func (p *Patient) TableName() string {
	return "patients"
}

// Claimed reports whether a password has been attached to the record.
func (p *Patient) Claimed() bool {
	return p.Password != nil && *p.Password != ""
}

// NumericFields returns the nullable columns in CSV order, starting at column 3.
func (p *Patient) NumericFields() []**float64 {
	return []**float64{
		&p.HeifaTotalScoreMale,
		&p.HeifaTotalScoreFemale,
		&p.DiscretionaryHeifaScoreMale,
		&p.DiscretionaryHeifaScoreFemale,
		&p.DiscretionaryServeSize,
		&p.VegetablesHeifaScoreMale,
		&p.VegetablesHeifaScoreFemale,
		&p.VegetablesWithLegumesAllocatedServeSize,
		&p.LegumesAllocatedVegetables,
		&p.VegetablesVariationsScore,
		&p.VegetablesCruciferous,
		&p.VegetablesTuberAndBulb,
		&p.VegetablesOther,
		&p.Legumes,
		&p.VegetablesGreen,
		&p.VegetablesRedAndOrange,
		&p.FruitHeifaScoreMale,
		&p.FruitHeifaScoreFemale,
		&p.FruitServeSize,
		&p.FruitVariationsScore,
		&p.FruitPome,
		&p.FruitTropicalAndSubtropical,
		&p.FruitBerry,
		&p.FruitStone,
		&p.FruitCitrus,
		&p.FruitOther,
		&p.GrainsAndCerealsHeifaScoreMale,
		&p.GrainsAndCerealsHeifaScoreFemale,
		&p.GrainsAndCerealsServeSize,
		&p.GrainsAndCerealsNonWholeGrains,
		&p.WholeGrainsHeifaScoreMale,
		&p.WholeGrainsHeifaScoreFemale,
		&p.WholeGrainsServeSize,
		&p.MeatAndAlternativesHeifaScoreMale,
		&p.MeatAndAlternativesHeifaScoreFemale,
		&p.MeatAndAlternativesWithLegumesAllocatedServeSize,
		&p.LegumesAllocatedMeatAndAlternatives,
		&p.DairyAndAlternativesHeifaScoreMale,
		&p.DairyAndAlternativesHeifaScoreFemale,
		&p.DairyAndAlternativesServeSize,
		&p.SodiumHeifaScoreMale,
		&p.SodiumHeifaScoreFemale,
		&p.SodiumMgMilligrams,
		&p.AlcoholHeifaScoreMale,
		&p.AlcoholHeifaScoreFemale,
		&p.AlcoholStandardDrinks,
		&p.WaterHeifaScoreMale,
		&p.WaterHeifaScoreFemale,
		&p.Water,
		&p.WaterTotalMl,
		&p.BeverageTotalMl,
		&p.SugarHeifaScoreMale,
		&p.SugarHeifaScoreFemale,
		&p.Sugar,
		&p.SaturatedFatHeifaScoreMale,
		&p.SaturatedFatHeifaScoreFemale,
		&p.SaturatedFat,
		&p.UnsaturatedFatHeifaScoreMale,
		&p.UnsaturatedFatHeifaScoreFemale,
		&p.UnsaturatedFatServeSize,
	}
}
