package kernel

// Priority is the urgency tier of a listing or transport request.
// It is stored and transported as its display string; free-form values are
// tolerated and rank below the named tiers.
type Priority string

const (
	PriorityEmergency Priority = "Emergency"
	PriorityCritical  Priority = "Critical"
	PriorityUrgent    Priority = "Urgent"
	PriorityNormal    Priority = "Normal"
)

// priorityLowestRank sorts any unrecognized tier after the named ones.
const priorityLowestRank = 4

// PriorityFromString maps a raw value onto a Priority. Unknown values pass
// through unchanged; an empty value defaults to Normal. The catalog and
// dispatch views only rank the named tiers, so nothing stricter is needed.
func PriorityFromString(s string) Priority {
	if s == "" {
		return PriorityNormal
	}
	return Priority(s)
}

// String returns the display form of the priority.
func (p Priority) String() string {
	return string(p)
}

// CatalogRank orders the organ catalog: Emergency, Critical, Urgent, then
// everything else. Lower ranks sort first.
func (p Priority) CatalogRank() int {
	switch p {
	case PriorityEmergency:
		return 1
	case PriorityCritical:
		return 2
	case PriorityUrgent:
		return 3
	default:
		return priorityLowestRank
	}
}

// DispatchRank orders the driver "available orders" view: Emergency,
// Urgent, Critical, then everything else. Lower ranks sort first.
//
// The swap of Urgent and Critical relative to CatalogRank is deliberate;
// the two views have always ranked the middle tiers differently and must
// not be unified.
func (p Priority) DispatchRank() int {
	switch p {
	case PriorityEmergency:
		return 1
	case PriorityUrgent:
		return 2
	case PriorityCritical:
		return 3
	default:
		return priorityLowestRank
	}
}
