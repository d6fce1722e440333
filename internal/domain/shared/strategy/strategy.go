package strategy

// Basis is what a strategy's quantity counts
type Basis string

const (
	// BasisPiece counts whole items
	BasisPiece Basis = "piece"
	// BasisWeight counts weight units of bulk material
	BasisWeight Basis = "weight"
)

// IsValid returns true for a known basis
func (b Basis) IsValid() bool {
	return b == BasisPiece || b == BasisWeight
}

// Strategy is a named pricing rule set
type Strategy interface {
	Name() string
	Basis() Basis
}

// BaseStrategy is embedded by concrete strategies
type BaseStrategy struct {
	name  string
	basis Basis
}

// NewBaseStrategy creates a new BaseStrategy
func NewBaseStrategy(name string, basis Basis) BaseStrategy {
	return BaseStrategy{name: name, basis: basis}
}

// Name returns the strategy name recorded on quotes
func (s BaseStrategy) Name() string {
	return s.name
}

// Basis returns what the strategy's quantity counts
func (s BaseStrategy) Basis() Basis {
	return s.basis
}
