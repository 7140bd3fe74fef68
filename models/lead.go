package models

// Lead is a sell-car submission from the public site. Every field except id
// and createdAt defaults to the empty string when the form omits it.
type Lead struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	CarMake          string `json:"carMake"`
	CarModel         string `json:"carModel"`
	CarYear          string `json:"carYear"`
	CarMileage       string `json:"carMileage"`
	CarLocation      string `json:"carLocation"`
	PreferredContact string `json:"preferredContact"`
	AdditionalInfo   string `json:"additionalInfo"`
	Urgency          string `json:"urgency"`
	CreatedAt        string `json:"createdAt"`
}
