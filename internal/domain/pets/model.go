package pets

// StorageKey es la clave de la colección en el backend.
const StorageKey = "pcm_pets"

// DefaultType es la especie que se asume cuando no se indica ninguna.
const DefaultType = "Hund"

// Pet representa el perfil de una mascota.
// Los nombres json son los del almacenamiento del cliente web (pcm_pets), así un export viejo se lee igual.
type Pet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Type  string `json:"type"`
	Age   int    `json:"age"`
	Image string `json:"image"` // data URL o URL
}

func (p Pet) RecordID() string { return p.ID }

func (p Pet) WithRecordID(id string) Pet {
	p.ID = id
	return p
}
