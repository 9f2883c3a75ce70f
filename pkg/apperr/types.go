package apperr

// Domain is the business area that owns a code namespace.
type Domain string

const (
	DomainChat         Domain = "CHAT"
	DomainGroup        Domain = "GROUP"
	DomainNotification Domain = "NOTIFICATION"
	DomainProfile      Domain = "PROFILE"
	DomainAuth         Domain = "AUTH"
)

// Category classifies why an error occurred, independent of domain.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryPermission Category = "permission"
	CategoryBusiness   Category = "business"
	CategorySystem     Category = "system"
	CategorySecurity   Category = "security"
)

// Categories lists every category in a stable order.
var Categories = []Category{
	CategoryValidation,
	CategoryPermission,
	CategoryBusiness,
	CategorySystem,
	CategorySecurity,
}

// Severity drives logging verbosity and security escalation.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank orders severities; unknown values rank below SeverityLow.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// AtLeast reports whether s is as severe as other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Rank() >= other.Rank()
}
