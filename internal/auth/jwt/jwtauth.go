package jwt

import (
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// sellerClaim is the token claim carrying the seller id on seller-scoped
// tokens. Admin tokens do not carry it.
const sellerClaim = "sellerId"

// VerifyToken validates the token signature and expiry and returns its
// subject.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// VerifyAdminToken validates the token and rejects seller-scoped tokens:
// both token kinds are signed with the same secret, so the admin surface
// must check the claim, not just the signature.
func VerifyAdminToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	if _, ok := t.Get(sellerClaim); ok {
		return "", fmt.Errorf("seller token is not valid for admin access")
	}
	return t.Subject(), nil
}

// SellerIDFromToken validates the token and extracts its seller claim.
func SellerIDFromToken(jwtAuth *jwtauth.JWTAuth, token string) (int, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return 0, err
	}
	raw, ok := t.Get(sellerClaim)
	if !ok {
		return 0, fmt.Errorf("token carries no %s claim", sellerClaim)
	}
	// jwx decodes JSON numbers as float64
	f, ok := raw.(float64)
	if !ok || f <= 0 {
		return 0, fmt.Errorf("invalid %s claim", sellerClaim)
	}
	return int(f), nil
}

// NewAdminToken creates an admin JWT with an optional subject claim.
func NewAdminToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	return ts, err
}

// NewSellerToken creates a seller JWT scoped to one seller id.
func NewSellerToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, sellerID int) (string, error) {
	claims := map[string]interface{}{
		"exp":       time.Now().Add(ttl).Unix(),
		sellerClaim: sellerID,
	}
	_, ts, err := jwtAuth.Encode(claims)
	return ts, err
}
