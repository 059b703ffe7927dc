package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/mathias/Halite-II/models"
)

// RankingService builds the leaderboard queries. Every builder returns
// a *gorm.DB subquery that the caller either executes directly or
// embeds in a larger query through GORM's (?) placeholder; execution
// and serialization belong to the API layer.
//
// Ranks come from ROW_NUMBER() OVER (ORDER BY score DESC), so for any
// set of N bots the assigned ranks are exactly 1..N with no gaps. Bots
// with equal scores get storage-order-dependent ranks; there is no
// secondary sort key.
type RankingService struct {
	DB *gorm.DB
}

func NewRankingService(db *gorm.DB) *RankingService {
	return &RankingService{DB: db}
}

// rankedBotColumns is the shared projection of both ranking queries.
const rankedBotColumns = "ROW_NUMBER() OVER (ORDER BY bot.score DESC) AS bot_rank, " +
	"bot.user_id, bot.id AS bot_id, bot.mu, bot.score, " +
	"bot.games_played, bot.version_number, bot.language"

// RankedBot is one row of RankedBots and HackathonRankedBots.
type RankedBot struct {
	Rank          int     `gorm:"column:bot_rank" json:"rank"`
	UserID        int     `gorm:"column:user_id" json:"user_id"`
	BotID         int     `gorm:"column:bot_id" json:"bot_id"`
	Mu            float64 `gorm:"column:mu" json:"mu"`
	Score         float64 `gorm:"column:score" json:"score"`
	GamesPlayed   int     `gorm:"column:games_played" json:"games_played"`
	VersionNumber int     `gorm:"column:version_number" json:"version_number"`
	Language      string  `gorm:"column:language" json:"language"`
}

// RankedBots ranks every bot by descending score.
func (s *RankingService) RankedBots() *gorm.DB {
	return s.DB.Table("bot").Select(rankedBotColumns)
}

// HackathonRankedBots ranks the bots whose owners participate in the
// given hackathon. The window restarts at 1 over the filtered set, so
// local ranks are a permutation of 1..M for M participant bots.
func (s *RankingService) HackathonRankedBots(hackathonID int) *gorm.DB {
	return s.DB.Table("bot").
		Select(rankedBotColumns).
		Joins("JOIN hackathon_participant hp ON hp.user_id = bot.user_id AND hp.hackathon_id = ?", hackathonID)
}

// UserSummary is one row of AllUsersSummary. Rank is nil for users
// without bots; the count and sum columns coalesce to zero.
type UserSummary struct {
	UserID                 int     `gorm:"column:user_id" json:"user_id"`
	Username               string  `gorm:"column:username" json:"username"`
	PlayerLevel            string  `gorm:"column:player_level" json:"player_level"`
	OrganizationID         *int    `gorm:"column:organization_id" json:"organization_id,omitempty"`
	OrganizationName       *string `gorm:"column:organization_name" json:"organization_name,omitempty"`
	CountryCode            *string `gorm:"column:country_code" json:"country_code,omitempty"`
	CountrySubdivisionCode *string `gorm:"column:country_subdivision_code" json:"country_subdivision_code,omitempty"`
	Email                  string  `gorm:"column:email" json:"email,omitempty"`
	NumBots                int     `gorm:"column:num_bots" json:"num_bots"`
	NumGames               int     `gorm:"column:num_games" json:"num_games"`
	NumSubmissions         int     `gorm:"column:num_submissions" json:"num_submissions"`
	Score                  float64 `gorm:"column:score" json:"score"`
	Rank                   *int    `gorm:"column:rank" json:"rank,omitempty"`
}

// AllUsersSummary aggregates every user's bots into one row per user,
// including users that have no bots at all. A user's rank is the rank
// of their best bot.
func (s *RankingService) AllUsersSummary() *gorm.DB {
	return s.DB.Table(`"user" u`).
		Select("u.id AS user_id, u.username, u.player_level, u.organization_id, "+
			"o.organization_name, u.country_code, u.country_subdivision_code, u.email, "+
			"COUNT(rb.bot_id) AS num_bots, "+
			"COALESCE(SUM(rb.games_played), 0) AS num_games, "+
			"COALESCE(SUM(rb.version_number), 0) AS num_submissions, "+
			"COALESCE(MAX(rb.score), 0) AS score, "+
			"MIN(rb.bot_rank) AS rank").
		Joins("LEFT JOIN (?) rb ON rb.user_id = u.id", s.RankedBots()).
		Joins("LEFT JOIN organization o ON o.id = u.organization_id").
		Group("u.id, o.organization_name")
}

// RankedBotUser is one row of RankedBotsWithUsers.
type RankedBotUser struct {
	UserID                 int     `gorm:"column:user_id" json:"user_id"`
	Username               string  `gorm:"column:username" json:"username"`
	PlayerLevel            string  `gorm:"column:player_level" json:"player_level"`
	OrganizationID         *int    `gorm:"column:organization_id" json:"organization_id,omitempty"`
	OrganizationName       *string `gorm:"column:organization_name" json:"organization_name,omitempty"`
	CountryCode            *string `gorm:"column:country_code" json:"country_code,omitempty"`
	CountrySubdivisionCode *string `gorm:"column:country_subdivision_code" json:"country_subdivision_code,omitempty"`
	Email                  string  `gorm:"column:email" json:"email,omitempty"`
	BotID                  int     `gorm:"column:bot_id" json:"bot_id"`
	NumGames               int     `gorm:"column:num_games" json:"num_games"`
	NumSubmissions         int     `gorm:"column:num_submissions" json:"num_submissions"`
	Mu                     float64 `gorm:"column:mu" json:"mu"`
	Score                  float64 `gorm:"column:score" json:"score"`
	Language               string  `gorm:"column:language" json:"language"`
	Rank                   int     `gorm:"column:rank" json:"rank"`
}

// RankedBotsWithUsers is the full leaderboard: one row per ranked bot,
// enriched with its owner and the owner's organization.
func (s *RankingService) RankedBotsWithUsers() *gorm.DB {
	return s.DB.Table("(?) AS rb", s.RankedBots()).
		Select("u.id AS user_id, u.username, u.player_level, u.organization_id, "+
			"o.organization_name, u.country_code, u.country_subdivision_code, u.email, "+
			"rb.bot_id, rb.games_played AS num_games, rb.version_number AS num_submissions, "+
			"rb.mu, rb.score, rb.language, "+
			"CAST(rb.bot_rank AS INTEGER) AS rank").
		Joins(`JOIN "user" u ON rb.user_id = u.id`).
		Joins("LEFT JOIN organization o ON o.id = u.organization_id")
}

// RankedUser is one row of RankedUsersBest.
type RankedUser struct {
	UserID   int    `gorm:"column:user_id" json:"user_id"`
	Username string `gorm:"column:username" json:"username"`
	Rank     int    `gorm:"column:rank" json:"rank"`
}

// RankedUsersBest ranks users by their best bot: one row per user with
// at least one bot, rank = the minimum rank among that user's bots.
func (s *RankingService) RankedUsersBest() *gorm.DB {
	return s.DB.Table(`"user" u`).
		Select("u.id AS user_id, u.username, MIN(rb.bot_rank) AS rank").
		Joins("JOIN (?) rb ON rb.user_id = u.id", s.RankedBots()).
		Group("u.id")
}

// HackathonRankedBotUser is one row of HackathonRankedBotsWithUsers.
type HackathonRankedBotUser struct {
	UserID                 int     `gorm:"column:user_id" json:"user_id"`
	Username               string  `gorm:"column:username" json:"username"`
	PlayerLevel            string  `gorm:"column:player_level" json:"player_level"`
	OrganizationID         *int    `gorm:"column:organization_id" json:"organization_id,omitempty"`
	OrganizationName       *string `gorm:"column:organization_name" json:"organization_name,omitempty"`
	CountryCode            *string `gorm:"column:country_code" json:"country_code,omitempty"`
	CountrySubdivisionCode *string `gorm:"column:country_subdivision_code" json:"country_subdivision_code,omitempty"`
	BotID                  int     `gorm:"column:bot_id" json:"bot_id"`
	NumGames               int     `gorm:"column:num_games" json:"num_games"`
	NumSubmissions         int     `gorm:"column:num_submissions" json:"num_submissions"`
	Mu                     float64 `gorm:"column:mu" json:"mu"`
	Score                  float64 `gorm:"column:score" json:"score"`
	Language               string  `gorm:"column:language" json:"language"`
	GlobalRank             int     `gorm:"column:global_rank" json:"global_rank"`
	LocalRank              int     `gorm:"column:local_rank" json:"local_rank"`
}

// HackathonRankedBotsWithUsers joins the hackathon-local ranking with
// the global one on (user_id, bot_id), so every row carries both
// ranks. Both joins are inner: a participant bot that is missing from
// the global ranking is excluded rather than reported with a hole.
func (s *RankingService) HackathonRankedBotsWithUsers(hackathonID int) *gorm.DB {
	return s.DB.Table("(?) AS rb", s.RankedBots()).
		Select("u.id AS user_id, u.username, u.player_level, u.organization_id, "+
			"o.organization_name, u.country_code, u.country_subdivision_code, "+
			"rb.bot_id, rb.games_played AS num_games, rb.version_number AS num_submissions, "+
			"rb.mu, rb.score, rb.language, "+
			"CAST(rb.bot_rank AS INTEGER) AS global_rank, "+
			"CAST(lr.bot_rank AS INTEGER) AS local_rank").
		Joins(`JOIN "user" u ON rb.user_id = u.id`).
		Joins("JOIN (?) lr ON lr.user_id = rb.user_id AND lr.bot_id = rb.bot_id",
			s.HackathonRankedBots(hackathonID)).
		Joins("LEFT JOIN organization o ON o.id = u.organization_id")
}

// TotalRankedBots counts the bots that have played at least one game.
func (s *RankingService) TotalRankedBots(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).
		Model(&models.Bot{}).
		Where("games_played > ?", 0).
		Count(&count).Error
	return count, err
}

// ListRankedBots executes RankedBots and scans the full leaderboard.
func (s *RankingService) ListRankedBots(ctx context.Context) ([]RankedBot, error) {
	var rows []RankedBot
	err := s.RankedBots().WithContext(ctx).Scan(&rows).Error
	return rows, err
}

// ListHackathonRankedBots executes HackathonRankedBots for one hackathon.
func (s *RankingService) ListHackathonRankedBots(ctx context.Context, hackathonID int) ([]RankedBot, error) {
	var rows []RankedBot
	err := s.HackathonRankedBots(hackathonID).WithContext(ctx).Scan(&rows).Error
	return rows, err
}

// ListAllUsersSummary executes AllUsersSummary.
func (s *RankingService) ListAllUsersSummary(ctx context.Context) ([]UserSummary, error) {
	var rows []UserSummary
	err := s.AllUsersSummary().WithContext(ctx).Scan(&rows).Error
	return rows, err
}

// ListRankedBotsWithUsers executes RankedBotsWithUsers.
func (s *RankingService) ListRankedBotsWithUsers(ctx context.Context) ([]RankedBotUser, error) {
	var rows []RankedBotUser
	err := s.RankedBotsWithUsers().WithContext(ctx).Scan(&rows).Error
	return rows, err
}

// ListRankedUsersBest executes RankedUsersBest.
func (s *RankingService) ListRankedUsersBest(ctx context.Context) ([]RankedUser, error) {
	var rows []RankedUser
	err := s.RankedUsersBest().WithContext(ctx).Scan(&rows).Error
	return rows, err
}

// ListHackathonRankedBotsWithUsers executes HackathonRankedBotsWithUsers.
func (s *RankingService) ListHackathonRankedBotsWithUsers(ctx context.Context, hackathonID int) ([]HackathonRankedBotUser, error) {
	var rows []HackathonRankedBotUser
	err := s.HackathonRankedBotsWithUsers(hackathonID).WithContext(ctx).Scan(&rows).Error
	return rows, err
}
