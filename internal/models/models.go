// filepath: internal/models/models.go
package models

import "time"

// MemoryPhoto is a photo on the memory wall. Tags are stored as a JSON
// array in a TEXT column and decoded on read.
type MemoryPhoto struct {
	ID          int64     `json:"id"`
	PhotoID     string    `json:"photo_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	UploadedBy  string    `json:"uploaded_by"`
	Tags        []string  `json:"tags"`
	Location    string    `json:"location"`
	UploadDate  time.Time `json:"upload_date"`
}

// PhotoCreateRequest carries the non-file fields of a multipart photo upload.
// Tags arrives as a raw JSON string, exactly as the form field is sent.
type PhotoCreateRequest struct {
	Title       string
	Description string
	UploadedBy  string
	Tags        string
	Location    string
}

// Feedback is an entry on the feedback board. Status has no mutation
// endpoint; rows keep the schema default until the product defines a
// lifecycle for it.
type Feedback struct {
	ID         int64     `json:"id"`
	FeedbackID string    `json:"feedback_id"`
	Type       string    `json:"type"`
	Category   string    `json:"category"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Author     string    `json:"author"`
	Priority   string    `json:"priority"`
	Status     string    `json:"status"`
	Likes      int       `json:"likes"`
	CreatedAt  time.Time `json:"created_at"`
}

// FeedbackCreateRequest is the POST /api/feedbacks body.
type FeedbackCreateRequest struct {
	Type     string `json:"type"`
	Category string `json:"category"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Priority string `json:"priority"`
}

// FeedbackFilter holds the optional equality filters of the list endpoint.
// Filters are combined conjunctively.
type FeedbackFilter struct {
	Type     string
	Category string
	Author   string
}

// CoupleGoal is a shared goal between the two partners.
type CoupleGoal struct {
	ID          int64     `json:"id"`
	GoalID      string    `json:"goal_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    string    `json:"priority"`
	TargetDate  string    `json:"target_date"`
	CreatedBy   string    `json:"created_by"`
	AssignedTo  string    `json:"assigned_to"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

// GoalCreateRequest is the POST /api/couple-goals body.
type GoalCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	TargetDate  string `json:"target_date"`
	CreatedBy   string `json:"created_by"`
	AssignedTo  string `json:"assigned_to"`
	Notes       string `json:"notes"`
}

// Message is a love message shown on the journey pages.
type Message struct {
	ID             int64     `json:"id"`
	MessageID      string    `json:"message_id"`
	Content        string    `json:"content"`
	SenderInfo     string    `json:"sender_info"`
	JourneySection string    `json:"journey_section"`
	CreatedAt      time.Time `json:"created_at"`
}

// MessageCreateRequest is the POST /api/messages body.
type MessageCreateRequest struct {
	Content        string `json:"content"`
	SenderInfo     string `json:"sender_info"`
	JourneySection string `json:"journey_section"`
}

// WeatherPreferences stores one row of display settings per user.
type WeatherPreferences struct {
	UserID    string    `json:"user_id"`
	Location  string    `json:"location"`
	Units     string    `json:"units"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WeatherPreferencesRequest is the PUT /api/weather-preferences/{userId} body.
type WeatherPreferencesRequest struct {
	Location string `json:"location"`
	Units    string `json:"units"`
}

// ActivityEntry is one append-only audit row. Details is free-form
// metadata, JSON-encoded into a TEXT column. No endpoint reads it back.
type ActivityEntry struct {
	UserID       string
	Action       string
	ResourceType string
	ResourceID   string
	Details      map[string]interface{}
}

// Info describes the running server instance.
type Info struct {
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}
