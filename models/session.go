package models

import "time"

type Session struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	Role      string    `bson:"role" json:"role"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Principal is the identity a request acts as once its session has been authorized.
type Principal struct {
	UserID    string
	Role      string
	SessionID string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
