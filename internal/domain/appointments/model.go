package appointments

const StorageKey = "pcm_appointments"

// Appointment es una cita de una mascota (veterinario, vacuna, peluquería...).
// PetID es una referencia débil: no se valida contra pcm_pets.
type Appointment struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`
	Title string `json:"title"`
	Date  string `json:"date"` // ISO 8601, tal como llega del cliente
	Type  Type   `json:"type"`
	Notes string `json:"notes,omitempty"`
}

func (a Appointment) RecordID() string { return a.ID }

func (a Appointment) WithRecordID(id string) Appointment {
	a.ID = id
	return a
}
