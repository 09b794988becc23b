package model

// PatternEntry maps a lowercase merchant substring or keyword to a tag.
// Entries are immutable reference data loaded once at startup.
type PatternEntry struct {
	Pattern     string      `yaml:"pattern"`
	Tag         string      `yaml:"tag"`
	Category    string      `yaml:"category"`
	ExpenseType ExpenseType `yaml:"expense_type"`
	// Confidence is a prior belief strength in (0,1], not a probability
	// guaranteed by evidence. It is only ever an ensemble input.
	Confidence float64 `yaml:"confidence"`
}

// Business categories used to group pattern entries.
const (
	CategoryStreaming   = "streaming"
	CategorySupermarket = "supermarket"
	CategoryRestaurant  = "restaurant"
	CategoryUtilities   = "utilities"
	CategoryTelecom     = "telecom"
	CategoryTransport   = "transport"
	CategoryHealth      = "health"
	CategoryBank        = "bank_insurance"
	CategoryShopping    = "shopping"
	CategoryHousing     = "housing"
)
