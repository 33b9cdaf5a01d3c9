package domain

// Operation identifies a guarded action for the role policy.
type Operation string

const (
	OpManageOffers       Operation = "offers:manage"
	OpManageCandidates   Operation = "candidates:manage"
	OpSummarizeCandidate Operation = "candidates:summarize"
	OpManageEmployees    Operation = "employees:manage"
)

// policy maps each guarded operation to the roles allowed to perform it.
// Keeping the table in one place decouples authorization rules from the
// individual usecases.
var policy = map[Operation][]string{
	OpManageOffers:       {RoleAdmin, RoleHR},
	OpManageCandidates:   {RoleAdmin, RoleHR},
	OpSummarizeCandidate: {RoleAdmin, RoleHR},
	OpManageEmployees:    {RoleAdmin, RoleHR},
}

// Allowed reports whether the given role may perform the operation.
// Unknown operations and unknown roles are denied.
func Allowed(op Operation, role string) bool {
	for _, allowed := range policy[op] {
		if role == allowed {
			return true
		}
	}
	return false
}
