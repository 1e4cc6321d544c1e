package models

import "time"

// SearchEngine is a user-defined search provider shown on the dashboard.
// QuickCommand, when set, is a short prefix that selects the engine from the
// search box; it is unique per user, case-insensitively.
type SearchEngine struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	SearchURL    string    `json:"search_url"`
	Icon         string    `json:"icon"`
	SortOrder    int64     `json:"sort_order"`
	QuickCommand string    `json:"quick_command"`
	UserID       int64     `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (e SearchEngine) TableName() string {
	return "search_engines"
}

// SearchEngineRequest is the body of search-engine create/update calls.
type SearchEngineRequest struct {
	Name         string  `json:"name"`
	URL          *string `json:"url"`
	SearchURL    string  `json:"searchUrl"`
	Icon         string  `json:"icon"`
	SortOrder    *int64  `json:"sortOrder"`
	QuickCommand *string `json:"quickCommand"`
}

// SearchEngineUpdate carries the optional fields of a partial engine update.
// A nil field leaves the stored value untouched.
type SearchEngineUpdate struct {
	Name         *string `json:"name"`
	URL          *string `json:"url"`
	SearchURL    *string `json:"searchUrl"`
	Icon         *string `json:"icon"`
	SortOrder    *int64  `json:"sortOrder"`
	QuickCommand *string `json:"quickCommand"`
}
