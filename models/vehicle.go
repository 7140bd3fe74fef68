package models

// Vehicle statuses as stored in vehicles.json.
const (
	VehicleStatusActive  = "active"
	VehicleStatusSold    = "sold"
	VehicleStatusPending = "pending"
)

// Vehicle is a listing record. DealerID is nullable and not checked against
// dealers.json; deleting a dealer leaves vehicles pointing at the old id.
type Vehicle struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Price        float64  `json:"price"`
	Image        string   `json:"image"`
	Images       []string `json:"images"`
	Year         int      `json:"year"`
	Mileage      int      `json:"mileage"`
	FuelType     string   `json:"fuelType"`
	Transmission string   `json:"transmission"`
	Color        string   `json:"color"`
	Features     []string `json:"features"`
	Location     string   `json:"location"`
	IsFeatured   bool     `json:"isFeatured"`
	Status       string   `json:"status"`
	Views        int      `json:"views"`
	DealerID     *int64   `json:"dealerId"`
	CreatedAt    string   `json:"createdAt"`
}
