package jwt

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the external identity provider.
// Token issuance lives outside this backend; we only need to validate the
// signature and pull the identity claims the engines run on.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	ClaimsFromContext(ctx context.Context) (Claims, error)
}

// Claims is the identity context every engine call runs with.
type Claims struct {
	EmployeeID string
	Role       string
}

func (c Claims) IsAdmin() bool {
	return c.Role == "admin"
}

type JWTService struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

// ClaimsFromContext extracts the employee identity from a verified token.
func (j *JWTService) ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, err
	}

	employeeID, _ := claims["employee_id"].(string)
	role, _ := claims["role"].(string)

	return Claims{
		EmployeeID: employeeID,
		Role:       role,
	}, nil
}
