package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"local-market/internal/config"
	entity "local-market/internal/domain"
)

func GenerateToken(user *entity.User) (string, error) {
	jwtCfg := config.LoadJWT()

	claims := &entity.JWTClaims{
		UserID:   user.ID,
		UserType: user.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(jwtCfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "local-market",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtCfg.Secret)
}

func ValidateToken(tokenString string) (*entity.JWTClaims, error) {
	jwtCfg := config.LoadJWT()

	token, err := jwt.ParseWithClaims(tokenString, &entity.JWTClaims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtCfg.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*entity.JWTClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
