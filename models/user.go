package models

import "time"

// User mirrors the schema of the platform `user` table (read-only).
// The table is owned and migrated by the web frontend service; this
// layer only reads it for ranking and reporting queries.
type User struct {
	ID                     int       `gorm:"column:id;primaryKey" json:"id"`
	Username               string    `gorm:"column:username" json:"username"`
	Email                  string    `gorm:"column:email" json:"email,omitempty"`
	IsEmailGood            bool      `gorm:"column:is_email_good" json:"-"`
	IsActive               bool      `gorm:"column:is_active" json:"-"`
	PlayerLevel            string    `gorm:"column:player_level" json:"player_level"`
	OrganizationID         *int      `gorm:"column:organization_id" json:"organization_id,omitempty"`
	CountryCode            *string   `gorm:"column:country_code" json:"country_code,omitempty"`
	CountrySubdivisionCode *string   `gorm:"column:country_subdivision_code" json:"country_subdivision_code,omitempty"`
	CreationTime           time.Time `gorm:"column:creation_time" json:"creation_time"`
}

func (User) TableName() string {
	return "user"
}

// UserNotification mirrors the `user_notification` table (read-only).
type UserNotification struct {
	ID           int       `gorm:"column:id;primaryKey" json:"id"`
	UserID       int       `gorm:"column:user_id" json:"user_id"`
	Title        string    `gorm:"column:title" json:"title"`
	Body         string    `gorm:"column:body" json:"body"`
	Mood         string    `gorm:"column:mood" json:"mood"`
	CreationTime time.Time `gorm:"column:creation_time" json:"creation_time"`
}

func (UserNotification) TableName() string {
	return "user_notification"
}
