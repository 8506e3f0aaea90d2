package booking

// ServiceType discriminates which kind of bid a booking accepts.
type ServiceType string

const (
	ServiceTypeMealPrep ServiceType = "meal_prep"
	ServiceTypeCatering ServiceType = "catering"
)

func (st ServiceType) String() string {
	return string(st)
}

func (st ServiceType) IsValid() bool {
	switch st {
	case ServiceTypeMealPrep, ServiceTypeCatering:
		return true
	default:
		return false
	}
}
