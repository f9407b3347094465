// Package promotion provides discount codes with a validity window.
//
// A promotion is valid on a given day when it is active and the day lies
// within [start, end], both ends inclusive. Comparison is done on calendar
// dates, so the time of day never matters.
package promotion

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrPromotionIsNotConstructed is returned when a Promotion was not created via NewPromotion.
	ErrPromotionIsNotConstructed = errors.New("Promotion must be created via NewPromotion constructor")
	// ErrCodeIsRequired is returned for promotions without a code.
	ErrCodeIsRequired = errs.NewValueIsRequiredError("code")
)

// Promotion is a percentage discount identified by a unique code.
// The validity window never changes; only the active flag can be toggled,
// and toggling is safe while orders are reading the promotion.
type Promotion struct {
	code        string
	description string
	percentage  float64
	start       time.Time
	end         time.Time
	active      atomic.Bool
	guard       guard.ConstructorGuard
}

// NewPromotion creates an active promotion.
//
// Parameters:
//   - code: unique, case-insensitive code; stored upper-case
//   - description: text shown to customers
//   - percentage: discount in [0, 100]
//   - start, end: first and last day of validity (inclusive, end not before start)
//
// Example:
//
//	now := time.Now()
//	welcome, err := promotion.NewPromotion("WELCOME", "Welcome Discount", 10, now, now.AddDate(0, 1, 0))
func NewPromotion(code, description string, percentage float64, start, end time.Time) (*Promotion, error) {
	p := &Promotion{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}
	p.active.Store(true)

	if err := errors.Join(
		p.setCode(code),
		p.setPercentage(percentage),
		p.setWindow(start, end),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePromotion rebuilds a promotion with a persisted active flag.
func RestorePromotion(code, description string, percentage float64, start, end time.Time, active bool) (*Promotion, error) {
	p, err := NewPromotion(code, description, percentage, start, end)
	if err != nil {
		return nil, err
	}
	p.active.Store(active)
	return p, nil
}

// Validate reports whether the promotion was constructed via NewPromotion.
func (p *Promotion) Validate() error {
	if p == nil {
		return ErrPromotionIsNotConstructed
	}
	return p.guard.Validate(ErrPromotionIsNotConstructed)
}

// Code returns the upper-case promotion code.
func (p *Promotion) Code() string {
	return p.code
}

// Description returns the customer-facing description.
func (p *Promotion) Description() string {
	return p.description
}

// Percentage returns the discount percentage.
func (p *Promotion) Percentage() float64 {
	return p.percentage
}

// Start returns the first valid day.
func (p *Promotion) Start() time.Time {
	return p.start
}

// End returns the last valid day.
func (p *Promotion) End() time.Time {
	return p.end
}

// IsActive reports the admin toggle.
func (p *Promotion) IsActive() bool {
	return p.active.Load()
}

// SetActive toggles the promotion.
func (p *Promotion) SetActive(active bool) {
	p.active.Store(active)
}

// IsValid reports whether the promotion applies on the calendar day of today.
func (p *Promotion) IsValid(today time.Time) bool {
	if !p.IsActive() {
		return false
	}
	day := dateOf(today)
	return !day.Before(p.start) && !day.After(p.end)
}

// ApplyDiscount returns amount × (1 − percentage/100) when the promotion is
// valid on today, and amount unchanged otherwise.
func (p *Promotion) ApplyDiscount(amount float64, today time.Time) float64 {
	if !p.IsValid(today) {
		return amount
	}
	return amount * (1 - p.percentage/100)
}

func (p *Promotion) setCode(code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return ErrCodeIsRequired
	}
	p.code = code
	return nil
}

func (p *Promotion) setPercentage(percentage float64) error {
	if percentage < 0 || percentage > 100 {
		return errs.NewValueIsOutOfRangeError("percentage", percentage, 0, 100)
	}
	p.percentage = percentage
	return nil
}

func (p *Promotion) setWindow(start, end time.Time) error {
	startDay, endDay := dateOf(start), dateOf(end)
	if endDay.Before(startDay) {
		return errs.NewValueIsInvalidErrorWithCause("end",
			fmt.Errorf("%s is before %s", endDay.Format(time.DateOnly), startDay.Format(time.DateOnly)))
	}
	p.start, p.end = startDay, endDay
	return nil
}

// dateOf drops the clock part of t, keeping the calendar day of t's location.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
