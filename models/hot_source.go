package models

import "time"

// HotSource is a "hot search" feed link shown on the dashboard. Type names the
// upstream aggregator category; EnablePreview toggles the inline preview pane.
type HotSource struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	Icon          string    `json:"icon"`
	Type          string    `json:"type"`
	EnablePreview bool      `json:"enable_preview"`
	SortOrder     int64     `json:"sort_order"`
	UserID        int64     `json:"user_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (s HotSource) TableName() string {
	return "hot_sources"
}

// HotSourceRequest is the body of hot-source create/update calls.
type HotSourceRequest struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	Icon          string `json:"icon"`
	Type          string `json:"type"`
	EnablePreview *bool  `json:"enable_preview"`
	SortOrder     *int64 `json:"sort_order"`
}

// HotSourceUpdate carries the optional fields of a partial hot-source update.
// A nil field leaves the stored value untouched.
type HotSourceUpdate struct {
	Name          *string `json:"name"`
	URL           *string `json:"url"`
	Icon          *string `json:"icon"`
	Type          *string `json:"type"`
	EnablePreview *bool   `json:"enable_preview"`
	SortOrder     *int64  `json:"sort_order"`
}
