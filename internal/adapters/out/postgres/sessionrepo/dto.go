// Package sessionrepo provides data transfer objects and mapping functions
// for session persistence. A session row stores the signed-in user as a JSON
// payload next to the opaque identifier the browser holds, so restoring a
// session is a single lookup.
package sessionrepo

import (
	"encoding/json"
	"time"

	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting sessions.
type SessionDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	User      []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time
}

// TableName specifies the database table name for sessions.
func (SessionDTO) TableName() string {
	return "sessions"
}

// userPayload is the JSON shape of the stored user. Field names follow the
// auth service's payload so a session row is readable next to its source.
type userPayload struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Token           string `json:"token"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	PhoneNumber     string `json:"phone_number"`
	DeliveryAddress string `json:"delivery_address"`
	IsAdmin         bool   `json:"is_admin"`
	IsSuperAdmin    bool   `json:"is_super_admin"`
	IsLivreur       bool   `json:"is_livreur"`
}

// fromDomain converts a session user to its database representation.
func fromDomain(id kernel.UUID, user *session.User) (SessionDTO, error) {
	profile := user.Profile()
	roles := user.Roles()

	raw, err := json.Marshal(userPayload{
		ID:              user.ID().String(),
		Email:           user.Email(),
		Token:           user.Token(),
		FirstName:       profile.FirstName,
		LastName:        profile.LastName,
		PhoneNumber:     profile.PhoneNumber,
		DeliveryAddress: profile.DeliveryAddress,
		IsAdmin:         roles.Admin,
		IsSuperAdmin:    roles.SuperAdmin,
		IsLivreur:       roles.Courier,
	})
	if err != nil {
		return SessionDTO{}, err
	}

	return SessionDTO{
		ID:   id.Value(),
		User: raw,
	}, nil
}

// toDomain converts a database row back to a session user.
func toDomain(dto SessionDTO) (*session.User, error) {
	var payload userPayload
	if err := json.Unmarshal(dto.User, &payload); err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromString(payload.ID)
	if err != nil {
		return nil, err
	}

	return session.NewUser(
		userID,
		payload.Email,
		payload.Token,
		session.Roles{
			Admin:      payload.IsAdmin,
			SuperAdmin: payload.IsSuperAdmin,
			Courier:    payload.IsLivreur,
		},
		session.Profile{
			FirstName:       payload.FirstName,
			LastName:        payload.LastName,
			PhoneNumber:     payload.PhoneNumber,
			DeliveryAddress: payload.DeliveryAddress,
		},
	)
}
