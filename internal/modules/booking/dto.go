package booking

import (
	"travelbooking/internal/domain"
)

type ListQuery struct {
	Type   string `form:"type" binding:"omitempty,oneof=flight hotel car restaurant"`
	Status string `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	Page   string `form:"page"`
	Limit  string `form:"limit"`
}

func (q ListQuery) Filter() domain.BookingFilter {
	return domain.BookingFilter{
		Type:   domain.BookingType(q.Type),
		Status: domain.BookingStatus(q.Status),
	}
}
