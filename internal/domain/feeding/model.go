package feeding

const StorageKey = "pcm_feeding"

// Plan es una toma diaria de comida.
type Plan struct {
	ID       string `json:"id"`
	PetID    string `json:"petId"`
	Time     string `json:"time"`   // HH:MM
	Amount   string `json:"amount"` // texto libre, p.ej. "200g"
	FoodType string `json:"foodType"`
}

func (p Plan) RecordID() string { return p.ID }

func (p Plan) WithRecordID(id string) Plan {
	p.ID = id
	return p
}
