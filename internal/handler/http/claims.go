package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

// requestClaims returns the verified access token claims for the request.
func requestClaims(r *http.Request) (map[string]interface{}, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	return claims, err
}

func claimString(claims map[string]interface{}, key string) string {
	v, _ := claims[key].(string)
	return v
}
