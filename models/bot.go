package models

import "time"

// CompileStatus is the compilation status of an uploaded bot.
type CompileStatus string

const (
	CompileStatusUploaded   CompileStatus = "Uploaded"
	CompileStatusInProgress CompileStatus = "InProgress"
	CompileStatusSuccessful CompileStatus = "Successful"
	CompileStatusFailed     CompileStatus = "Failed"
	CompileStatusDisabled   CompileStatus = "Disabled"
)

// Valid reports whether s is one of the known compile statuses.
func (s CompileStatus) Valid() bool {
	switch s {
	case CompileStatusUploaded, CompileStatusInProgress,
		CompileStatusSuccessful, CompileStatusFailed, CompileStatusDisabled:
		return true
	}
	return false
}

// Bot mirrors the `bot` table (read-only). Mu/Score are written by the
// external rating-update process after every game; VersionNumber is
// bumped by the upload pipeline on each new submission.
type Bot struct {
	ID            int           `gorm:"column:id;primaryKey" json:"id"`
	UserID        int           `gorm:"column:user_id" json:"user_id"`
	CompileStatus CompileStatus `gorm:"column:compile_status" json:"compile_status"`
	VersionNumber int           `gorm:"column:version_number" json:"version_number"`
	GamesPlayed   int           `gorm:"column:games_played" json:"games_played"`
	Language      string        `gorm:"column:language" json:"language"`
	Mu            float64       `gorm:"column:mu" json:"mu"`
	Sigma         float64       `gorm:"column:sigma" json:"sigma"`
	Score         float64       `gorm:"column:score" json:"score"`
}

func (Bot) TableName() string {
	return "bot"
}

// BotHistory mirrors the `bot_history` table (read-only): one row per
// retired bot version, frozen at retirement time.
type BotHistory struct {
	UserID          int        `gorm:"column:user_id" json:"user_id"`
	BotID           int        `gorm:"column:bot_id" json:"bot_id"`
	VersionNumber   int        `gorm:"column:version_number" json:"version_number"`
	LastRank        *int       `gorm:"column:last_rank" json:"last_rank,omitempty"`
	LastScore       float64    `gorm:"column:last_score" json:"last_score"`
	LastNumPlayers  int        `gorm:"column:last_num_players" json:"last_num_players"`
	LastGamesPlayed int        `gorm:"column:last_games_played" json:"last_games_played"`
	Language        string     `gorm:"column:language" json:"language"`
	WhenRetired     *time.Time `gorm:"column:when_retired" json:"when_retired,omitempty"`
}

func (BotHistory) TableName() string {
	return "bot_history"
}
