package entity

type Therapist struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	Available      bool   `json:"available"`
}

// NewTherapist is the input for a roster insert. A nil Available means available.
type NewTherapist struct {
	Name           string
	Specialization string
	Bio            string
	Available      *bool
}

func (n NewTherapist) Therapist() Therapist {
	t := Therapist{
		Name:           n.Name,
		Specialization: n.Specialization,
		Bio:            n.Bio,
		Available:      true,
	}
	if n.Available != nil {
		t.Available = *n.Available
	}
	return t
}

// UnknownTherapist is the name shown when a referenced therapist cannot be found.
const UnknownTherapist = "Unknown"
