package auth

import "travelbooking/internal/domain"

func errInvalidCredentials() error {
	return domain.Unauthorized("Invalid email or password")
}
