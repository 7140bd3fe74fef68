package handlers

import (
	"net/http"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type dealerRequest struct {
	ID      *int64  `json:"id"`
	Name    *string `json:"name"`
	Owner   *string `json:"owner"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
	Notes   *string `json:"notes"`
}

// GetDealers returns all dealers, oldest first.
func GetDealers(c *gin.Context) {
	dealers := []models.Dealer{}
	store.Read(dealersFile, &dealers)
	c.JSON(http.StatusOK, dealers)
}

// CreateDealer appends a dealer record. Dealers carry no images and, unlike
// the other entities, keep insertion order.
func CreateDealer(c *gin.Context) {
	var req dealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	l := store.Locker(dealersFile)
	l.Lock()
	defer l.Unlock()

	dealer := models.Dealer{
		ID:           newID(),
		Name:         strOr(req.Name, ""),
		Owner:        strOr(req.Owner, ""),
		Phone:        strOr(req.Phone, ""),
		Email:        strOr(req.Email, ""),
		Address:      strOr(req.Address, ""),
		Notes:        strOr(req.Notes, ""),
		VehicleCount: 0,
		CreatedAt:    nowISO(),
	}

	dealers := []models.Dealer{}
	store.Read(dealersFile, &dealers)
	dealers = append(dealers, dealer)

	if err := store.Write(dealersFile, dealers); err != nil {
		log.WithError(err).Error("failed to persist dealer")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, dealer)
}

// UpdateDealer merges the submitted fields over the stored record and stamps
// updatedAt.
func UpdateDealer(c *gin.Context) {
	var req dealerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.ID == nil || *req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	l := store.Locker(dealersFile)
	l.Lock()
	defer l.Unlock()

	dealers := []models.Dealer{}
	store.Read(dealersFile, &dealers)

	idx := findDealer(dealers, *req.ID)
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dealer not found"})
		return
	}

	dealer := dealers[idx]
	if req.Name != nil {
		dealer.Name = *req.Name
	}
	if req.Owner != nil {
		dealer.Owner = *req.Owner
	}
	if req.Phone != nil {
		dealer.Phone = *req.Phone
	}
	if req.Email != nil {
		dealer.Email = *req.Email
	}
	if req.Address != nil {
		dealer.Address = *req.Address
	}
	if req.Notes != nil {
		dealer.Notes = *req.Notes
	}
	dealer.UpdatedAt = nowISO()

	dealers[idx] = dealer

	if err := store.Write(dealersFile, dealers); err != nil {
		log.WithError(err).Error("failed to persist dealer update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, dealer)
}

// DeleteDealer removes a dealer. Vehicles referencing the dealer keep their
// dealerId; there is no cascade.
func DeleteDealer(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	l := store.Locker(dealersFile)
	l.Lock()
	defer l.Unlock()

	dealers := []models.Dealer{}
	store.Read(dealersFile, &dealers)

	idx := findDealer(dealers, req.ID)
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dealer not found"})
		return
	}

	dealers = append(dealers[:idx], dealers[idx+1:]...)

	if err := store.Write(dealersFile, dealers); err != nil {
		log.WithError(err).Error("failed to persist dealer delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}

func findDealer(dealers []models.Dealer, id int64) int {
	for i := range dealers {
		if dealers[i].ID == id {
			return i
		}
	}
	return -1
}
