package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// vehicleRequest is the typed schema for vehicle POST and PUT bodies. Pointer
// fields distinguish absent from zero so updates merge instead of clobbering.
type vehicleRequest struct {
	ID           *int64   `json:"id"`
	Title        *string  `json:"title"`
	Price        *float64 `json:"price"`
	Year         *int     `json:"year"`
	Mileage      *int     `json:"mileage"`
	FuelType     *string  `json:"fuelType"`
	Transmission *string  `json:"transmission"`
	Color        *string  `json:"color"`
	Features     []string `json:"features"`
	Location     *string  `json:"location"`
	IsFeatured   *bool    `json:"isFeatured"`
	DealerID     *int64   `json:"dealerId"`
	Image        *string  `json:"image"`
	ImageBase64  string   `json:"imageBase64"`
	ImagesBase64 []string `json:"imagesBase64"`
}

// GetVehicles returns the full vehicle list, newest first. Storage problems
// degrade to an empty list, never an error status.
func GetVehicles(c *gin.Context) {
	vehicles := []models.Vehicle{}
	store.Read(vehiclesFile, &vehicles)
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle creates a listing, running each supplied base64 image through
// the compression pipeline.
func CreateVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	l := store.Locker(vehiclesFile)
	l.Lock()
	defer l.Unlock()

	id := newID()
	image := strOr(req.Image, "")
	imagePaths := []string{}

	if len(req.ImagesBase64) > 0 {
		for idx, payload := range capBatch(req.ImagesBase64) {
			imagePaths = append(imagePaths, uploads.SaveBase64(payload, fmt.Sprintf("%d-%d.jpg", id, idx)))
		}
		image = imagePaths[0]
	} else if req.ImageBase64 != "" {
		image = uploads.SaveBase64(req.ImageBase64, fmt.Sprintf("%d.jpg", id))
		imagePaths = append(imagePaths, image)
	}

	vehicle := models.Vehicle{
		ID:           id,
		Title:        strOr(req.Title, "Untitled"),
		Price:        floatOr(req.Price),
		Image:        image,
		Images:       imagePaths,
		Year:         intOr(req.Year),
		Mileage:      intOr(req.Mileage),
		FuelType:     strOr(req.FuelType, ""),
		Transmission: strOr(req.Transmission, ""),
		Color:        strOr(req.Color, ""),
		Features:     sliceOr(req.Features),
		Location:     strOr(req.Location, ""),
		IsFeatured:   boolOr(req.IsFeatured),
		Status:       models.VehicleStatusActive,
		Views:        0,
		DealerID:     req.DealerID,
		CreatedAt:    nowISO(),
	}

	vehicles := []models.Vehicle{}
	store.Read(vehiclesFile, &vehicles)
	vehicles = append([]models.Vehicle{vehicle}, vehicles...)

	if err := store.Write(vehiclesFile, vehicles); err != nil {
		log.WithError(err).Error("failed to persist vehicle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle merges the submitted fields over the stored record. Image
// URLs are only replaced when new base64 payloads arrive.
func UpdateVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.ID == nil || *req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	l := store.Locker(vehiclesFile)
	l.Lock()
	defer l.Unlock()

	vehicles := []models.Vehicle{}
	store.Read(vehiclesFile, &vehicles)

	idx := findVehicle(vehicles, *req.ID)
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	vehicle := vehicles[idx]

	if len(req.ImagesBase64) > 0 {
		now := time.Now().UnixMilli()
		imagePaths := []string{}
		for i, payload := range capBatch(req.ImagesBase64) {
			imagePaths = append(imagePaths, uploads.SaveBase64(payload, fmt.Sprintf("%d-%d-%d.jpg", vehicle.ID, now, i)))
		}
		vehicle.Images = imagePaths
		vehicle.Image = imagePaths[0]
	}

	if req.Title != nil {
		vehicle.Title = *req.Title
	}
	if req.Price != nil {
		vehicle.Price = *req.Price
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Mileage != nil {
		vehicle.Mileage = *req.Mileage
	}
	if req.FuelType != nil {
		vehicle.FuelType = *req.FuelType
	}
	if req.Transmission != nil {
		vehicle.Transmission = *req.Transmission
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.Features != nil {
		vehicle.Features = req.Features
	}
	if req.Location != nil {
		vehicle.Location = *req.Location
	}
	if req.IsFeatured != nil {
		vehicle.IsFeatured = *req.IsFeatured
	}
	if req.DealerID != nil {
		vehicle.DealerID = req.DealerID
	}

	vehicles[idx] = vehicle

	if err := store.Write(vehiclesFile, vehicles); err != nil {
		log.WithError(err).Error("failed to persist vehicle update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle removes a listing and best-effort deletes its uploaded
// images from disk.
func DeleteVehicle(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	l := store.Locker(vehiclesFile)
	l.Lock()
	defer l.Unlock()

	vehicles := []models.Vehicle{}
	store.Read(vehiclesFile, &vehicles)

	idx := findVehicle(vehicles, req.ID)
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	removed := vehicles[idx]
	vehicles = append(vehicles[:idx], vehicles[idx+1:]...)

	for _, p := range removed.Images {
		uploads.Remove(p)
	}

	if err := store.Write(vehiclesFile, vehicles); err != nil {
		log.WithError(err).Error("failed to persist vehicle delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}

func findVehicle(vehicles []models.Vehicle, id int64) int {
	for i := range vehicles {
		if vehicles[i].ID == id {
			return i
		}
	}
	return -1
}
