package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type siteRequest struct {
	SiteName         string   `json:"siteName"`
	Tagline          string   `json:"tagline"`
	LogoBase64       string   `json:"logoBase64"`
	HeroImagesBase64 []string `json:"heroImagesBase64"`
}

// GetSiteConfig returns the singleton site configuration, falling back to the
// built-in default when the file is missing or corrupt.
func GetSiteConfig(c *gin.Context) {
	cfg := models.DefaultSiteConfig()
	store.Read(siteFile, &cfg)
	c.JSON(http.StatusOK, cfg)
}

// UpdateSiteConfig merges the submitted fields into the singleton. Empty
// siteName/tagline leave the stored values alone; a hero batch replaces the
// whole heroImages list.
func UpdateSiteConfig(c *gin.Context) {
	var req siteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	l := store.Locker(siteFile)
	l.Lock()
	defer l.Unlock()

	cfg := models.DefaultSiteConfig()
	store.Read(siteFile, &cfg)

	if req.SiteName != "" {
		cfg.SiteName = req.SiteName
	}
	if req.Tagline != "" {
		cfg.Tagline = req.Tagline
	}

	if req.LogoBase64 != "" {
		cfg.Logo = uploads.SaveBase64(req.LogoBase64, fmt.Sprintf("site-logo-%d.jpg", newID()))
	}

	if len(req.HeroImagesBase64) > 0 {
		id := newID()
		saved := []string{}
		for idx, payload := range capBatch(req.HeroImagesBase64) {
			saved = append(saved, uploads.SaveBase64(payload, fmt.Sprintf("hero-%d-%d.jpg", id, idx)))
		}
		cfg.HeroImages = saved
	}

	if err := store.Write(siteFile, cfg); err != nil {
		log.WithError(err).Error("failed to persist site config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site config"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
