package customer

// Customer is a policy holder record. CustomerID is the human-readable
// identifier ("C003") that the rest of the system references.
type Customer struct {
	CustomerID string
	Name       string
	Address    string
	Phone      string
}

// Option is one dropdown entry for selection UIs. The pair is passed around
// as a structure; the label is display-only and is never parsed back into an
// identifier.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
