package models

import "time"

// DefaultSiteTitle is applied when no system config row exists for a user
// and when a lazily created row does not specify a title.
const DefaultSiteTitle = "Home Nav"

// SystemConfig is the per-user site configuration. At most one row exists per
// user; it is created lazily on first update.
type SystemConfig struct {
	ID        int64     `json:"id"`
	SiteTitle string    `json:"site_title"`
	ICPRecord string    `json:"icp_record"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c SystemConfig) TableName() string {
	return "system_configs"
}

// SystemConfigView is the public projection of a system config row.
type SystemConfigView struct {
	SiteTitle string `json:"site_title"`
	ICPRecord string `json:"icp_record"`
}

// View builds the public projection of the config.
func (c SystemConfig) View() SystemConfigView {
	return SystemConfigView{SiteTitle: c.SiteTitle, ICPRecord: c.ICPRecord}
}

// SystemConfigUpdate carries the optional fields of a partial config update.
type SystemConfigUpdate struct {
	SiteTitle *string `json:"site_title"`
	ICPRecord *string `json:"icp_record"`
}
