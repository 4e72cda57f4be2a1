package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name     string    `json:"name" gorm:"not null"`
	Email    string    `json:"email" gorm:"uniqueIndex;not null"`
	Password string    `json:"-" gorm:"not null"`

	// Reserved account-schema fields; no logic reads them yet.
	TwoFactorEnabled bool           `json:"-" gorm:"default:false"`
	TwoFactorSecret  *string        `json:"-"`
	Deactivated      bool           `json:"-" gorm:"default:false"`
	Settings         datatypes.JSON `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the password-stripped projection of User. It is the only user
// shape that crosses the API boundary: responses, token payloads and the
// request context all carry this, never User.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the secret-bearing fields. Recomputed on every boundary
// crossing, never cached.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
