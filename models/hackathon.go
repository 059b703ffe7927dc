package models

import "time"

// Hackathon mirrors the `hackathon` table (read-only): a time-boxed
// event with its own local leaderboard.
type Hackathon struct {
	ID               int       `gorm:"column:id;primaryKey" json:"id"`
	Title            string    `gorm:"column:title" json:"title"`
	Description      string    `gorm:"column:description" json:"description"`
	StartDate        time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate          time.Time `gorm:"column:end_date" json:"end_date"`
	VerificationCode string    `gorm:"column:verification_code" json:"-"`
	OrganizationID   *int      `gorm:"column:organization_id" json:"organization_id,omitempty"`
}

func (Hackathon) TableName() string {
	return "hackathon"
}

// HackathonParticipant mirrors the `hackathon_participant` join table
// (read-only): membership of a user in a hackathon.
type HackathonParticipant struct {
	HackathonID int `gorm:"column:hackathon_id" json:"hackathon_id"`
	UserID      int `gorm:"column:user_id" json:"user_id"`
}

func (HackathonParticipant) TableName() string {
	return "hackathon_participant"
}

// HackathonSnapshot mirrors the `hackathon_snapshot` table (read-only):
// per-bot standings frozen when a hackathon closes.
type HackathonSnapshot struct {
	HackathonID   int     `gorm:"column:hackathon_id" json:"hackathon_id"`
	UserID        int     `gorm:"column:user_id" json:"user_id"`
	BotID         int     `gorm:"column:bot_id" json:"bot_id"`
	GamesPlayed   int     `gorm:"column:games_played" json:"games_played"`
	Score         float64 `gorm:"column:score" json:"score"`
	Mu            float64 `gorm:"column:mu" json:"mu"`
	VersionNumber int     `gorm:"column:version_number" json:"version_number"`
	Language      string  `gorm:"column:language" json:"language"`
}

func (HackathonSnapshot) TableName() string {
	return "hackathon_snapshot"
}
