package models

import (
	"time"
)

type User struct {
	UserID           uint      `gorm:"primaryKey;autoIncrement;column:user_id" json:"user_id"`
	Email            string    `gorm:"unique;not null"                         json:"email"`
	Username         string    `gorm:"unique;not null"                         json:"username"`
	Password         string    `gorm:"not null"                                json:"-"`
	AvatarBackground string    `gorm:"not null;default:'#FFCA28'"              json:"avatar_background"`
	AvatarEmoji      string    `gorm:"not null;default:'🙂'"                    json:"avatar_emoji"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// RefreshToken holds at most one row per user: user_id carries a unique
// index and login replaces the existing row instead of stacking new ones.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"           json:"id"`
	Token     string    `gorm:"unique;not null"      json:"token"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Match struct {
	MatchID       uint         `gorm:"primaryKey;autoIncrement;column:match_id" json:"match_id"`
	Name          string       `gorm:"not null"                                 json:"name"`
	Description   string       `json:"description"`
	GameType      string       `gorm:"not null"                                 json:"game_type"`
	WinningTeam   *uint        `json:"winning_team"`
	CreatorUserID uint         `gorm:"index;not null"                           json:"creator_user_id"`
	Teams         []Team       `gorm:"foreignKey:MatchID"                       json:"teams,omitempty"`
	Admins        []MatchAdmin `gorm:"foreignKey:MatchID"                       json:"admins,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

type Team struct {
	TeamID  uint     `gorm:"primaryKey;autoIncrement;column:team_id" json:"team_id"`
	MatchID uint     `gorm:"index;not null"                          json:"match_id"`
	Name    string   `gorm:"not null"                                json:"name"`
	Players []Player `gorm:"foreignKey:TeamID"                       json:"players,omitempty"`
}

type Player struct {
	PlayerID uint `gorm:"primaryKey;autoIncrement;column:player_id" json:"player_id"`
	TeamID   uint `gorm:"index;not null"                            json:"team_id"`
	UserID   uint `gorm:"index;not null"                            json:"user_id"`
}

type MatchAdmin struct {
	ID      uint `gorm:"primaryKey"                           json:"id"`
	MatchID uint `gorm:"uniqueIndex:idx_match_admin;not null" json:"match_id"`
	UserID  uint `gorm:"uniqueIndex:idx_match_admin;not null" json:"user_id"`
}
