package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

// StaffTokenPayload captures the data available when minting a staff JWT.
type StaffTokenPayload struct {
	StaffID string
	Role    enums.StaffRole
	JTI     string
}

// StaffTokenClaims represents the typed JWT carried by admin requests.
type StaffTokenClaims struct {
	StaffID string          `json:"staff_id"`
	Role    enums.StaffRole `json:"role"`
	jwt.RegisteredClaims
}
