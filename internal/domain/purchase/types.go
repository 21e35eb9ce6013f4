package purchase

type Provider string

const (
	ProviderManual Provider = "manual"
	ProviderSquare Provider = "square"
)

func (p Provider) String() string {
	return string(p)
}

func (p Provider) IsValid() bool {
	switch p {
	case ProviderManual, ProviderSquare:
		return true
	default:
		return false
	}
}

// DefaultCurrency applies when the provider omits one.
const DefaultCurrency = "GBP"
