package holiday

import "time"

// Slovak public holidays and days of rest (sviatky a dni pracovného pokoja).
var (
	SlovakFixed = []FixedRule{
		// state holidays
		{Day: 1, Month: time.January, Name: "Deň vzniku Slovenskej republiky"},
		{Day: 5, Month: time.July, Name: "Sviatok svätého Cyrila a Metoda"},
		{Day: 29, Month: time.August, Name: "Výročie Slovenského národného povstania"},
		{Day: 1, Month: time.September, Name: "Deň Ústavy Slovenskej republiky"},
		{Day: 17, Month: time.November, Name: "Deň boja za slobodu a demokraciu"},

		// days of rest
		{Day: 6, Month: time.January, Name: "Zjavenie Pána (Traja králi)"},
		{Day: 1, Month: time.May, Name: "Sviatok práce"},
		{Day: 8, Month: time.May, Name: "Deň víťazstva nad fašizmom"},
		{Day: 15, Month: time.September, Name: "Sedembolestná Panna Mária"},
		{Day: 1, Month: time.November, Name: "Sviatok všetkých svätých"},
		{Day: 24, Month: time.December, Name: "Štedrý deň"},
		{Day: 25, Month: time.December, Name: "Prvý sviatok vianočný"},
		{Day: 26, Month: time.December, Name: "Druhý sviatok vianočný"},
	}

	SlovakFeastRelative = []FeastRule{
		{Offset: -2, Name: "Veľký piatok"},
		{Offset: 1, Name: "Veľkonočný pondelok"},
	}

	SlovakOneOff = []OneOffRule{
		{Year: 2018, Month: time.October, Day: 30, Name: "100. výročie prijatia Deklarácie slovenského národa"},
	}
)

// NewSlovak builds a Calendar seeded with the Slovak holidays. Extra
// options are applied after the defaults.
func NewSlovak(opts ...Option) (*Calendar, error) {
	base := []Option{
		WithFixed(SlovakFixed...),
		WithFeastRelative(SlovakFeastRelative...),
		WithOneOff(SlovakOneOff...),
	}
	return New(append(base, opts...)...)
}
