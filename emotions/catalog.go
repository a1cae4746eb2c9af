package emotions

import (
	"errors"
	"fmt"
	"regexp"
)

// Category is the coarse valence of an emotion.
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNeutral  Category = "neutral"
	CategoryNegative Category = "negative"
)

// Energy is the arousal level of an emotion.
type Energy string

const (
	EnergyHigh   Energy = "high"
	EnergyMedium Energy = "medium"
	EnergyLow    Energy = "low"
)

// Emotion is one catalog record. ID doubles as the document key.
type Emotion struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Emoji        string   `json:"emoji" yaml:"emoji"`
	Color        string   `json:"color" yaml:"color"`
	Category     Category `json:"category" yaml:"category"`
	Energy       Energy   `json:"energy" yaml:"energy"`
	DisplayOrder int      `json:"displayOrder" yaml:"displayOrder"`
}

// Size is the number of records in the catalog.
const Size = 7

var catalog = [Size]Emotion{
	{ID: "excited", Name: "Excited", Emoji: "🎉", Color: "#10b981", Category: CategoryPositive, Energy: EnergyHigh, DisplayOrder: 1},
	{ID: "motivated", Name: "Motivated", Emoji: "💪", Color: "#3b82f6", Category: CategoryPositive, Energy: EnergyHigh, DisplayOrder: 2},
	{ID: "calm", Name: "Calm", Emoji: "😌", Color: "#06b6d4", Category: CategoryPositive, Energy: EnergyMedium, DisplayOrder: 3},
	{ID: "neutral", Name: "Neutral", Emoji: "😐", Color: "#6b7280", Category: CategoryNeutral, Energy: EnergyMedium, DisplayOrder: 4},
	{ID: "tired", Name: "Tired", Emoji: "😴", Color: "#f59e0b", Category: CategoryNegative, Energy: EnergyLow, DisplayOrder: 5},
	{ID: "anxious", Name: "Anxious", Emoji: "😰", Color: "#f97316", Category: CategoryNegative, Energy: EnergyLow, DisplayOrder: 6},
	{ID: "overwhelmed", Name: "Overwhelmed", Emoji: "😵", Color: "#ef4444", Category: CategoryNegative, Energy: EnergyLow, DisplayOrder: 7},
}

// Catalog returns a copy of the predefined emotions in display order.
func Catalog() []Emotion {
	out := make([]Emotion, len(catalog))
	copy(out, catalog[:])
	return out
}

// IDs returns the ids of the given records, preserving order.
func IDs(list []Emotion) []string {
	ids := make([]string, 0, len(list))
	for _, e := range list {
		ids = append(ids, e.ID)
	}
	return ids
}

// ComputeMissing returns the catalog entries whose id is not in existingIDs.
func ComputeMissing(existingIDs []string, list []Emotion) []Emotion {
	seen := make(map[string]struct{}, len(existingIDs))
	for _, id := range existingIDs {
		seen[id] = struct{}{}
	}

	var missing []Emotion
	for _, e := range list {
		if _, ok := seen[e.ID]; !ok {
			missing = append(missing, e)
		}
	}
	return missing
}

// Fields is the document body written to the store.
func (e Emotion) Fields() map[string]any {
	return map[string]any{
		"id":           e.ID,
		"name":         e.Name,
		"emoji":        e.Emoji,
		"color":        e.Color,
		"category":     string(e.Category),
		"energy":       string(e.Energy),
		"displayOrder": e.DisplayOrder,
	}
}

func (c Category) valid() bool {
	switch c {
	case CategoryPositive, CategoryNeutral, CategoryNegative:
		return true
	}
	return false
}

func (e Energy) valid() bool {
	switch e {
	case EnergyHigh, EnergyMedium, EnergyLow:
		return true
	}
	return false
}

var colorRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)

var ErrInvalidCatalog = errors.New("invalid emotion catalog")

// Validate checks that list is a well-formed catalog: Size records, unique ids,
// unique display orders in 1..Size, known enum values and hex colors.
func Validate(list []Emotion) error {
	if len(list) != Size {
		return fmt.Errorf("%w: want %d records, got %d", ErrInvalidCatalog, Size, len(list))
	}

	ids := map[string]bool{}
	orders := map[int]bool{}
	for i, e := range list {
		if e.ID == "" {
			return fmt.Errorf("%w: record %d has empty id", ErrInvalidCatalog, i)
		}
		if ids[e.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidCatalog, e.ID)
		}
		ids[e.ID] = true

		if e.DisplayOrder < 1 || e.DisplayOrder > Size {
			return fmt.Errorf("%w: %s displayOrder %d out of range", ErrInvalidCatalog, e.ID, e.DisplayOrder)
		}
		if orders[e.DisplayOrder] {
			return fmt.Errorf("%w: duplicate displayOrder %d", ErrInvalidCatalog, e.DisplayOrder)
		}
		orders[e.DisplayOrder] = true

		if !e.Category.valid() {
			return fmt.Errorf("%w: %s has unknown category %q", ErrInvalidCatalog, e.ID, e.Category)
		}
		if !e.Energy.valid() {
			return fmt.Errorf("%w: %s has unknown energy %q", ErrInvalidCatalog, e.ID, e.Energy)
		}
		if !colorRe.MatchString(e.Color) {
			return fmt.Errorf("%w: %s color must match %s (got %q)", ErrInvalidCatalog, e.ID, colorRe.String(), e.Color)
		}
	}
	return nil
}
