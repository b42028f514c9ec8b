package models

// Profile represents user-wide sleep settings, persisted alongside entries.
type Profile struct {
	Name      string  `json:"name,omitempty"`
	Age       int     `json:"age,omitempty"`
	Birthdate string  `json:"birthdate,omitempty"` // YYYY-MM-DD format
	Target    float64 `json:"target"`              // minimum recommended hours/night
	WakeTime  float64 `json:"wake_time"`           // default wake time, decimal hours
	Notes     string  `json:"notes,omitempty"`
}

// RecommendedRange returns the age-appropriate recommended sleep range in
// hours. Display only; debt math uses Target.
func (p Profile) RecommendedRange() (low, high float64) {
	switch {
	case p.Age > 0 && p.Age < 18:
		return 8, 10
	case p.Age >= 65:
		return 7, 8
	default:
		return 7, 9
	}
}
