package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// SecurityQuestion holds the user-chosen recovery question. The answer is
// stored as a bcrypt hash and must never reach a response body.
type SecurityQuestion struct {
	Question   string `bson:"question,omitempty" json:"question,omitempty"`
	AnswerHash string `bson:"answerHash,omitempty" json:"-"`
}

// IsSet reports whether the question and answer have both been stored.
func (s SecurityQuestion) IsSet() bool {
	return s.Question != "" && s.AnswerHash != ""
}

type User struct {
	ID           bson.ObjectID    `bson:"_id,omitempty" json:"id"`
	Name         string           `bson:"name,omitempty" json:"name,omitempty"`
	Email        string           `bson:"email" json:"email"`
	PasswordHash string           `bson:"passwordHash" json:"-"` // never expose
	Role         Role             `bson:"role" json:"role"`
	SecurityQ    SecurityQuestion `bson:"securityQuestion,omitempty" json:"-"`

	// TokenVersion is bumped on login, logout, password change and
	// security-question change. A token whose embedded version no longer
	// matches is rejected, which invalidates every earlier session at once.
	TokenVersion int `bson:"tokenVersion" json:"-"`

	// Reset token fields are set together and cleared together.
	PasswordResetTokenHash string     `bson:"passwordResetTokenHash,omitempty" json:"-"`
	PasswordResetExpiry    *time.Time `bson:"passwordResetExpiry,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the outward shape of an account: hashes and reset state
// stripped, only the question text of the security pair retained.
type PublicUser struct {
	ID               bson.ObjectID `json:"id"`
	Name             string        `json:"name,omitempty"`
	Email            string        `json:"email"`
	Role             Role          `json:"role"`
	SecurityQuestion string        `json:"securityQuestion,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Role:             u.Role,
		SecurityQuestion: u.SecurityQ.Question,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}
