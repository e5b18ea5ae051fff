package appointments

// Type clasifica la cita.
// @Enum vet, vaccine, grooming, other
type Type string

const (
	TypeVet      Type = "vet"
	TypeVaccine  Type = "vaccine"
	TypeGrooming Type = "grooming"
	TypeOther    Type = "other"
)

const DefaultType = TypeVet
