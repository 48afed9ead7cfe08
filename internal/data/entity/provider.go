package entity

type ProviderType string

const (
	ProviderTypeBus   ProviderType = "bus"
	ProviderTypeMetro ProviderType = "metro"
	ProviderTypeTrain ProviderType = "train"
)

func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderTypeBus, ProviderTypeMetro, ProviderTypeTrain:
		return true
	}
	return false
}

type TransportProvider struct {
	Base
	Name          string       `db:"name"`
	ProviderType  ProviderType `db:"provider_type"`
	Description   string       `db:"description"`
	ContactNumber string       `db:"contact_number"`
	Website       *string      `db:"website"`
}
