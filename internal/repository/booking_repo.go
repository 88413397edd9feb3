package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travelbooking/internal/database"
	"travelbooking/internal/domain"
	"travelbooking/internal/search"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	UserID           int64     `gorm:"column:user_id"`
	Type             string    `gorm:"column:type"`
	BookingReference string    `gorm:"column:booking_reference"`
	Status           string    `gorm:"column:status"`
	TotalAmount      float64   `gorm:"column:total_amount"`
	Currency         string    `gorm:"column:currency"`
	BookingDetails   string    `gorm:"column:booking_details"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) (*domain.Booking, error) {
	t := domain.BookingType(m.Type)
	details, err := domain.DecodeDetails(t, []byte(m.BookingDetails))
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", m.ID, err)
	}

	return &domain.Booking{
		ID:               m.ID,
		UserID:           m.UserID,
		Type:             t,
		BookingReference: m.BookingReference,
		Status:           domain.BookingStatus(m.Status),
		TotalAmount:      m.TotalAmount,
		Currency:         m.Currency,
		Details:          details,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}, nil
}

func toBookingModel(b *domain.Booking) (bookingModel, error) {
	details, err := json.Marshal(b.Details)
	if err != nil {
		return bookingModel{}, fmt.Errorf("encode booking details: %w", err)
	}

	return bookingModel{
		ID:               b.ID,
		UserID:           b.UserID,
		Type:             string(b.Type),
		BookingReference: b.BookingReference,
		Status:           string(b.Status),
		TotalAmount:      b.TotalAmount,
		Currency:         b.Currency,
		BookingDetails:   string(details),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}, nil
}

// Create inserts b and fills in the generated id. A reference that is already
// taken yields an error wrapping domain.ErrConflict.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m, err := toBookingModel(b)
	if err != nil {
		return err
	}

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if database.IsUniqueViolation(tx.Error) {
			return fmt.Errorf("booking reference %s: %w", b.BookingReference, domain.ErrConflict)
		}
		return tx.Error
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	b.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, notFound(tx.Error)
	}
	return toDomainBooking(m)
}

func (r *BookingRepository) GetByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_reference = ?", reference).First(&m)
	if tx.Error != nil {
		return nil, notFound(tx.Error)
	}
	return toDomainBooking(m)
}

// ListByUser returns one page of the user's bookings, newest first, and the
// number of bookings matching the filter.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64, f domain.BookingFilter, p search.Page) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Where("user_id = ?", userID)
	if f.Type != "" {
		q = q.Where("type = ?", string(f.Type))
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []bookingModel
	err := q.Order("created_at DESC").Order("id DESC").
		Offset(p.Offset()).Limit(p.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		b, err := toDomainBooking(m)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *b)
	}
	return out, total, nil
}

// UpdateStatus moves the booking to status `to` only if its current status is
// one of `from`. It reports false when the booking exists but was not in an
// allowed state.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, from []domain.BookingStatus, to domain.BookingStatus) (bool, error) {
	allowed := make([]string, 0, len(from))
	for _, s := range from {
		allowed = append(allowed, string(s))
	}

	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("id = ? AND status IN ?", id, allowed).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

type statusCount struct {
	Status string
	Count  int64
}

type typeCount struct {
	Type  string
	Count int64
}

type currencyTotal struct {
	Currency string
	Total    float64
}

func (r *BookingRepository) Stats(ctx context.Context, userID int64) (*domain.BookingStats, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&bookingModel{}).Where("user_id = ?", userID)
	}

	var byStatus []statusCount
	if err := base().Select("status, COUNT(*) AS count").Group("status").Scan(&byStatus).Error; err != nil {
		return nil, err
	}

	var byType []typeCount
	if err := base().Select("type, COUNT(*) AS count").Group("type").Scan(&byType).Error; err != nil {
		return nil, err
	}

	var spent []currencyTotal
	err := base().
		Where("status <> ?", string(domain.BookingCancelled)).
		Select("currency, SUM(total_amount) AS total").
		Group("currency").
		Scan(&spent).Error
	if err != nil {
		return nil, err
	}

	stats := &domain.BookingStats{
		ByStatus:   make(map[domain.BookingStatus]int64, len(byStatus)),
		ByType:     make(map[domain.BookingType]int64, len(byType)),
		TotalSpent: make(map[string]float64, len(spent)),
	}
	for _, s := range byStatus {
		stats.ByStatus[domain.BookingStatus(s.Status)] = s.Count
		stats.Total += s.Count
	}
	for _, t := range byType {
		stats.ByType[domain.BookingType(t.Type)] = t.Count
	}
	for _, c := range spent {
		stats.TotalSpent[c.Currency] = roundCents(c.Total)
	}
	return stats, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
