package wishlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Wish represents a single desired purchase.
//
// The price is always kept together with the currency it was quoted in; a
// wish is never stored pre-converted into the display currency.
type Wish struct {
	ID          string // unique within a collection, immutable after creation
	Title       string
	Description string
	Price       Money
	TargetDate  Date
	Link        string
	Image       string
	Category    string
	Purchased   bool
}

// Validate checks a wish for correctness and returns an error detailing all
// validation failures.
func (w Wish) Validate() error {
	var errs error
	if strings.TrimSpace(w.Title) == "" {
		errs = errors.Join(errs, errors.New("title is required"))
	}
	if w.Price.IsNegative() {
		errs = errors.Join(errs, errors.New("price cannot be negative"))
	}
	if _, err := ParseCurrency(w.Price.Currency()); err != nil {
		errs = errors.Join(errs, err)
	}
	if w.TargetDate.IsZero() {
		errs = errors.Join(errs, errors.New("target date is required"))
	}
	return errs
}

// MarshalJSON implements the json.Marshaler interface for Wish with a stable
// field order.
func (w Wish) MarshalJSON() ([]byte, error) {
	var jw jsonObjectWriter
	jw.Append("id", w.ID)
	jw.Append("title", w.Title)
	jw.Optional("description", w.Description)
	jw.Append("price", w.Price.AsFloat())
	jw.Append("currency", w.Price.Currency())
	jw.Append("targetDate", w.TargetDate)
	jw.Optional("link", w.Link)
	jw.Optional("image", w.Image)
	jw.Optional("category", w.Category)
	jw.Append("isPurchased", w.Purchased)
	return jw.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Wish.
func (w *Wish) UnmarshalJSON(data []byte) error {
	// to parse a json, we use a dedicated local struct with tag annotation.
	type jwish struct {
		ID          string  `json:"id"`
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
		TargetDate  Date    `json:"targetDate"`
		Link        string  `json:"link"`
		Image       string  `json:"image"`
		Category    string  `json:"category"`
		Purchased   bool    `json:"isPurchased"`
	}
	var j jwish
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if math.IsNaN(j.Price) || math.IsInf(j.Price, 0) {
		// degrade silently, a wish price is never a hard failure
		j.Price = 0
	}
	*w = Wish{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		Price:       M(j.Price, j.Currency),
		TargetDate:  j.TargetDate,
		Link:        j.Link,
		Image:       j.Image,
		Category:    j.Category,
		Purchased:   j.Purchased,
	}
	return nil
}

func (w Wish) String() string {
	return fmt.Sprintf("%s (%s by %s)", w.Title, w.Price, w.TargetDate)
}

var _ json.Marshaler = (*Wish)(nil)
var _ json.Unmarshaler = (*Wish)(nil)
