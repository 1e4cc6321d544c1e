package models

import "time"

// BookmarkCategory groups a user's bookmarks. A category cannot be deleted
// while bookmarks still reference it.
type BookmarkCategory struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon"`
	SortOrder int64     `json:"sort_order"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c BookmarkCategory) TableName() string {
	return "bookmark_categories"
}

// CategoryRequest is the body of category create/update calls.
// SortOrder is optional; absence leaves the stored value untouched on update
// and defaults to zero on create.
type CategoryRequest struct {
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	SortOrder *int64 `json:"sort_order"`
}

// CategoryUpdate carries the optional fields of a partial category update.
// A nil field leaves the stored value untouched.
type CategoryUpdate struct {
	Name      *string `json:"name"`
	Icon      *string `json:"icon"`
	SortOrder *int64  `json:"sort_order"`
}

// Bookmark is a single navigation entry owned by one user. InternalURL and
// ExternalURL hold the LAN-facing and WAN-facing addresses respectively;
// either may be empty.
type Bookmark struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	CategoryID  int64     `json:"category_id"`
	Icon        string    `json:"icon"`
	Remark      string    `json:"remark"`
	InternalURL string    `json:"internal_url"`
	ExternalURL string    `json:"external_url"`
	SortOrder   int64     `json:"sort_order"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (b Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkRequest is the body of bookmark create/update calls. The request
// uses camelCase field names while persisted rows use snake_case.
type BookmarkRequest struct {
	Name        string  `json:"name"`
	CategoryID  int64   `json:"categoryId"`
	InternalURL *string `json:"internalUrl"`
	ExternalURL *string `json:"externalUrl"`
	Icon        *string `json:"icon"`
	Remark      *string `json:"remark"`
	SortOrder   *int64  `json:"sort_order"`
}

// BookmarkUpdate carries the optional fields of a partial bookmark update.
// A nil field leaves the stored value untouched.
type BookmarkUpdate struct {
	Name        *string `json:"name"`
	CategoryID  *int64  `json:"categoryId"`
	InternalURL *string `json:"internalUrl"`
	ExternalURL *string `json:"externalUrl"`
	Icon        *string `json:"icon"`
	Remark      *string `json:"remark"`
	SortOrder   *int64  `json:"sort_order"`
}
