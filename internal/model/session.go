package model

import "time"

// Session - refresh-сессия пользователя. В базе хранится только
// хеш refresh токена, сам токен живет в cookie клиента
type Session struct {
	ID           string
	UserID       int
	RefreshToken string
	ExpiresAt    time.Time
}
