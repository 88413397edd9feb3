package booking

import (
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"travelbooking/internal/domain"
)

// NewReference returns a human-readable reference such as FL-3F9A0C12BE.
// Uniqueness is enforced by the store; callers retry on collision.
func NewReference(t domain.BookingType) string {
	id := uuid.New()
	return t.ReferencePrefix() + "-" + strings.ToUpper(hex.EncodeToString(id[:5]))
}
