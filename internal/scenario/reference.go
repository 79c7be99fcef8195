package scenario

// Reference returns the built-in walkthrough: four students spend a day on
// campus and Luca later tests positive.
func Reference() *Scenario {
	const (
		cluster = "Imperial College London computer cluster"
		bar     = "Postgraduate Bar"
		library = "Imperial College London Library"
		vna     = "Victoria and Albert Museum"
		museum  = "Natural History Museum"
		gym     = "Ethos"
	)

	return &Scenario{
		Name:      "campus day",
		Locations: []string{cluster, bar, library, vna, museum, gym},
		People: []PersonSpec{
			{Name: "Harry", Email: "hgc19@ic.ac.uk", Start: cluster},
			{Name: "Joe", Email: "j.stacey20@ic.ac.uk", Start: vna},
			{Name: "Luca", Email: "lg16@ic.ac.uk", Start: gym},
			{Name: "William", Email: "wh18@ic.ac.uk", Start: bar},
		},
		Moves: []MoveSpec{
			{Person: "Harry", To: gym},
			{Person: "Luca", To: cluster},
			{Person: "William", To: cluster},
			{Person: "Joe", To: gym},
			{Person: "Joe", To: bar},
			{Person: "Harry", To: bar},
		},
		Infected: []string{"Luca"},
	}
}
