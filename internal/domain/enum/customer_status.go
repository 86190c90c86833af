package enum

// CustomerStatus represents the relationship stage of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusLead     CustomerStatus = "lead"
)

func (s CustomerStatus) String() string {
	return string(s)
}

func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusLead:
		return true
	}
	return false
}

func CustomerStatusValues() []string {
	return []string{
		string(CustomerStatusActive),
		string(CustomerStatusInactive),
		string(CustomerStatusLead),
	}
}
