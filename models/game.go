// models/game.go
package models

import "time"

// Game mirrors the `game` table (read-only). ReplayBucket is the shard
// index of the replay bucket the match replay was written to.
type Game struct {
	ID           int       `gorm:"column:id;primaryKey" json:"id"`
	ReplayName   string    `gorm:"column:replay_name" json:"replay_name"`
	ReplayBucket int       `gorm:"column:replay_bucket" json:"replay_bucket"`
	MapWidth     int       `gorm:"column:map_width" json:"map_width"`
	MapHeight    int       `gorm:"column:map_height" json:"map_height"`
	TimePlayed   time.Time `gorm:"column:time_played" json:"time_played"`
}

func (Game) TableName() string {
	return "game"
}

// GameParticipant mirrors the `game_participant` table (read-only):
// one row per bot per played game.
type GameParticipant struct {
	GameID        int     `gorm:"column:game_id" json:"game_id"`
	UserID        int     `gorm:"column:user_id" json:"user_id"`
	BotID         int     `gorm:"column:bot_id" json:"bot_id"`
	VersionNumber int     `gorm:"column:version_number" json:"version_number"`
	LogName       *string `gorm:"column:log_name" json:"log_name,omitempty"`
	Rank          int     `gorm:"column:rank" json:"rank"`
	PlayerIndex   int     `gorm:"column:player_index" json:"player_index"`
	TimedOut      bool    `gorm:"column:timed_out" json:"timed_out"`
}

func (GameParticipant) TableName() string {
	return "game_participant"
}
