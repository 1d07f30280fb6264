package structs

type Fruit struct {
	Name       *string     `json:"name"`
	ID         *int        `json:"id"`
	Family     *string     `json:"family"`
	Order      *string     `json:"order"`
	Genus      *string     `json:"genus"`
	Nutritions *Nutritions `json:"nutritions"`
}

type Nutritions struct {
	Calories      *float64 `json:"calories"`
	Fat           *float64 `json:"fat"`
	Sugar         *float64 `json:"sugar"`
	Carbohydrates *float64 `json:"carbohydrates"`
	Protein       *float64 `json:"protein"`
}

type CurrencyRate struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

type Conversion struct {
	Base      string  `json:"base"`
	Target    string  `json:"target"`
	Amount    float64 `json:"amount"`
	Rate      float64 `json:"rate"`
	Result    float64 `json:"result"`
	Formatted string  `json:"formatted"`
}
