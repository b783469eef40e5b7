package model

import "time"

// Tip publication states.
const (
	TipStatusDraft     = "draft"
	TipStatusPublished = "published"
)

// Allowed tip difficulty levels.
var DifficultyLevels = []string{"beginner", "intermediate", "advanced"}

// Tip represents a career-advice article.
type Tip struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Category          string    `json:"category"`
	Author            string    `json:"author"`
	Tags              []string  `json:"tags"`
	DifficultyLevel   string    `json:"difficulty_level"`
	EstimatedReadTime int       `json:"estimated_read_time"`
	IsFeatured        bool      `json:"is_featured"`
	Status            string    `json:"status"`
	ViewsCount        int64     `json:"views_count"`
	LikesCount        int64     `json:"likes_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TipRequest carries the fields an admin submits when creating or
// updating a tip.
type TipRequest struct {
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	Category          string    `json:"category"`
	Author            string    `json:"author"`
	Tags              FieldList `json:"tags"`
	DifficultyLevel   string    `json:"difficulty_level"`
	EstimatedReadTime int       `json:"estimated_read_time"`
	IsFeatured        bool      `json:"is_featured"`
	Status            string    `json:"status"`
}
