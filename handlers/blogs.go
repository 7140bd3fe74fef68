package handlers

import (
	"fmt"
	"net/http"

	"github.com/Dirk1989/ideal-car/models"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type blogRequest struct {
	Title       *string `json:"title"`
	Excerpt     *string `json:"excerpt"`
	Content     *string `json:"content"`
	Category    *string `json:"category"`
	Date        *string `json:"date"`
	ReadTime    *string `json:"readTime"`
	Author      *string `json:"author"`
	Status      *string `json:"status"`
	Views       *int    `json:"views"`
	ImageBase64 string  `json:"imageBase64"`
}

// GetBlogs returns all blog posts, newest first. Draft filtering happens
// client-side.
func GetBlogs(c *gin.Context) {
	posts := []models.BlogPost{}
	store.Read(blogsFile, &posts)
	c.JSON(http.StatusOK, posts)
}

// CreateBlog creates a post with a single optional cover image. There is no
// update endpoint; the admin UI deletes and recreates.
func CreateBlog(c *gin.Context) {
	var req blogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	l := store.Locker(blogsFile)
	l.Lock()
	defer l.Unlock()

	id := newID()

	image := ""
	if req.ImageBase64 != "" {
		image = uploads.SaveBase64(req.ImageBase64, fmt.Sprintf("%d.jpg", id))
	}

	// Anything other than an explicit draft publishes immediately.
	status := models.BlogStatusPublished
	if req.Status != nil && *req.Status == models.BlogStatusDraft {
		status = models.BlogStatusDraft
	}

	post := models.BlogPost{
		ID:        id,
		Title:     strOr(req.Title, "Untitled"),
		Excerpt:   strOr(req.Excerpt, ""),
		Content:   strOr(req.Content, ""),
		Image:     image,
		Category:  strOr(req.Category, "General"),
		Date:      strOr(req.Date, nowISO()),
		ReadTime:  strOr(req.ReadTime, "3 min read"),
		Author:    strOr(req.Author, "Admin"),
		Status:    status,
		Views:     intOr(req.Views),
		CreatedAt: nowISO(),
	}

	posts := []models.BlogPost{}
	store.Read(blogsFile, &posts)
	posts = append([]models.BlogPost{post}, posts...)

	if err := store.Write(blogsFile, posts); err != nil {
		log.WithError(err).Error("failed to persist blog post")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// DeleteBlog removes a post and its cover image file.
func DeleteBlog(c *gin.Context) {
	var req struct {
		ID int64 `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing id"})
		return
	}

	l := store.Locker(blogsFile)
	l.Lock()
	defer l.Unlock()

	posts := []models.BlogPost{}
	store.Read(blogsFile, &posts)

	idx := -1
	for i := range posts {
		if posts[i].ID == req.ID {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	removed := posts[idx]
	posts = append(posts[:idx], posts[idx+1:]...)

	if removed.Image != "" {
		uploads.Remove(removed.Image)
	}

	if err := store.Write(blogsFile, posts); err != nil {
		log.WithError(err).Error("failed to persist blog delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": req.ID})
}
