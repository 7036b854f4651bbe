package model

import (
	"github.com/golang-jwt/jwt/v5"
)

// User - учетная запись. Баланс и игровая статистика живут в Player
type User struct {
	ID       int
	Name     string
	Login    string
	Password string
}

type UserClaims struct {
	jwt.RegisteredClaims
}

type AuthData struct {
	AccessToken  string
	RefreshToken string
	SessionID    string
}
