package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	BaseSimple
	UserID    int64             `db:"user_id"`
	Token     uuid.UUID         `db:"token"`
	Data      map[string]string `db:"data"`
	ExpiresAt time.Time         `db:"expires_at"`
	RevokedAt *time.Time        `db:"revoked_at"`
}
