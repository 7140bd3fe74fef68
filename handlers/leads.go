package handlers

import (
	"net/http"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type leadRequest struct {
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	CarMake          *string `json:"carMake"`
	CarModel         *string `json:"carModel"`
	CarYear          *string `json:"carYear"`
	CarMileage       *string `json:"carMileage"`
	CarLocation      *string `json:"carLocation"`
	PreferredContact *string `json:"preferredContact"`
	AdditionalInfo   *string `json:"additionalInfo"`
	Urgency          *string `json:"urgency"`
}

// GetLeads returns all sell-car leads, newest first.
func GetLeads(c *gin.Context) {
	leads := []models.Lead{}
	store.Read(leadsFile, &leads)
	c.JSON(http.StatusOK, leads)
}

// CreateLead persists a sell-car submission and fires the notification email
// in the background. The 201 never waits on, or fails because of, mail.
func CreateLead(c *gin.Context) {
	var req leadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	l := store.Locker(leadsFile)
	l.Lock()
	defer l.Unlock()

	lead := models.Lead{
		ID:               newID(),
		Name:             strOr(req.Name, ""),
		Phone:            strOr(req.Phone, ""),
		Email:            strOr(req.Email, ""),
		CarMake:          strOr(req.CarMake, ""),
		CarModel:         strOr(req.CarModel, ""),
		CarYear:          strOr(req.CarYear, ""),
		CarMileage:       strOr(req.CarMileage, ""),
		CarLocation:      strOr(req.CarLocation, ""),
		PreferredContact: strOr(req.PreferredContact, ""),
		AdditionalInfo:   strOr(req.AdditionalInfo, ""),
		Urgency:          strOr(req.Urgency, ""),
		CreatedAt:        nowISO(),
	}

	leads := []models.Lead{}
	store.Read(leadsFile, &leads)
	leads = append([]models.Lead{lead}, leads...)

	if err := store.Write(leadsFile, leads); err != nil {
		log.WithError(err).Error("failed to persist lead")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	go func(lead models.Lead) {
		if err := mailer.SendLeadNotification(lead); err != nil {
			log.WithError(err).Error("failed to send lead email")
		}
	}(lead)

	c.JSON(http.StatusCreated, lead)
}

// DeleteLead removes a lead record.
func DeleteLead(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	l := store.Locker(leadsFile)
	l.Lock()
	defer l.Unlock()

	leads := []models.Lead{}
	store.Read(leadsFile, &leads)

	idx := -1
	for i := range leads {
		if leads[i].ID == req.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	leads = append(leads[:idx], leads[idx+1:]...)

	if err := store.Write(leadsFile, leads); err != nil {
		log.WithError(err).Error("failed to persist lead delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}
