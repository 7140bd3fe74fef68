package models

const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
)

type BlogPost struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Excerpt   string `json:"excerpt"`
	Content   string `json:"content"`
	Image     string `json:"image"`
	Category  string `json:"category"`
	Date      string `json:"date"`
	ReadTime  string `json:"readTime"`
	Author    string `json:"author"`
	Status    string `json:"status"`
	Views     int    `json:"views"`
	CreatedAt string `json:"createdAt"`
}
