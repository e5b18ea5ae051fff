package gallery

const StorageKey = "pcm_gallery"

// Item es una foto de la galería. Se guardan de la más nueva a la más vieja.
type Item struct {
	ID    string `json:"id"`
	PetID string `json:"petId"`
	URL   string `json:"url"`  // data URL o URL
	Date  string `json:"date"` // RFC 3339
	Note  string `json:"note,omitempty"`
}

func (i Item) RecordID() string { return i.ID }

func (i Item) WithRecordID(id string) Item {
	i.ID = id
	return i
}
