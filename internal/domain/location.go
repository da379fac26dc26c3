package domain

// A named place usable as origin or destination.
// LocationCode is the join key used by transportations and route steps;
// its uniqueness is assumed of the remote store, not enforced here.
type Location struct {
	ID           ID
	Name         string
	City         string
	Country      string
	LocationCode string
}

// Editable copy of a Location. A draft without ID is created on submit,
// a draft with ID updates the existing record.
type LocationDraft struct {
	ID           ID
	Name         string
	City         string
	Country      string
	LocationCode string
}

func (d LocationDraft) WithName(v string) LocationDraft         { d.Name = v; return d }
func (d LocationDraft) WithCity(v string) LocationDraft         { d.City = v; return d }
func (d LocationDraft) WithCountry(v string) LocationDraft      { d.Country = v; return d }
func (d LocationDraft) WithLocationCode(v string) LocationDraft { d.LocationCode = v; return d }
func (d LocationDraft) WithID(id ID) LocationDraft              { d.ID = id; return d }

func (d LocationDraft) Location() Location {
	return Location{
		ID:           d.ID,
		Name:         d.Name,
		City:         d.City,
		Country:      d.Country,
		LocationCode: d.LocationCode,
	}
}
