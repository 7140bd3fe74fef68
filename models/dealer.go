package models

// Dealer is a business partner whose vehicles link back via Vehicle.DealerID.
// VehicleCount is persisted as 0 at creation; the admin UI derives the real
// count by filtering vehicles client-side.
type Dealer struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Owner        string `json:"owner"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Notes        string `json:"notes"`
	VehicleCount int    `json:"vehicleCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}
