package models

// Submission payloads for the fire-and-forget notification endpoints. These
// are never persisted; they exist only to be rendered into an email.

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type InspectionRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	VehicleDetails   string `json:"vehicleDetails"`
	Location         string `json:"location"`
	PreferredContact string `json:"preferredContact"`
	Notes            string `json:"notes"`
}

type VehicleEnquiry struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	VehicleTitle     string `json:"vehicleTitle"`
	VehiclePrice     string `json:"vehiclePrice"`
	PreferredContact string `json:"preferredContact"`
	Message          string `json:"message"`
}
