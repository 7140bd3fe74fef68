package handlers

import (
	"net/http"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// The three direct-form endpoints persist nothing; the email is the whole
// point, so a send failure surfaces as a 500. The lead path differs (see
// CreateLead): a lead has a durable record even when the email fails.

// SubmitContact forwards a contact form submission to the notify address.
func SubmitContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := mailer.SendContactNotification(msg); err != nil {
		log.WithError(err).Error("failed to send contact email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitInspection forwards an inspection booking request.
func SubmitInspection(c *gin.Context) {
	var req models.InspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := mailer.SendInspectionNotification(req); err != nil {
		log.WithError(err).Error("failed to send inspection email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SubmitVehicleEnquiry forwards an enquiry about a specific listing.
func SubmitVehicleEnquiry(c *gin.Context) {
	var enq models.VehicleEnquiry
	if err := c.ShouldBindJSON(&enq); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := mailer.SendEnquiryNotification(enq); err != nil {
		log.WithError(err).Error("failed to send enquiry email")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
