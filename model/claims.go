// model/claims.go
package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type AccessClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

type RefreshClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

type ResetClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}
