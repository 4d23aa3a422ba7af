package entities

import (
	"math"
	"time"

	domainerrors "talentia/contexts/marketplace/gig-marketplace/domain/errors"

	"github.com/shopspring/decimal"
)

const ReviewContextGig = "GIG"

const (
	MinRating = 1
	MaxRating = 5
	// RatingScale is the number of fractional digits a rating may carry.
	RatingScale = 1
)

type RatingReview struct {
	ReviewID   string
	FromUserID string
	ToUserID   string
	Rating     float64
	Comment    string
	Context    string
	CreatedAt  time.Time
}

func ValidateRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return domainerrors.ErrInvalidRating
	}
	value := decimal.NewFromFloat(rating)
	if !value.Equal(value.Round(RatingScale)) {
		return domainerrors.ErrInvalidRating
	}
	return nil
}
