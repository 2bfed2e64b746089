package insurancetype

// InsuranceType is an insurance product ("T012": name plus description).
type InsuranceType struct {
	InsuranceTypeID string
	Name            string
	Description     string
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
