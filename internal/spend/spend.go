package spend

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category classifies where the money went.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryEntertainment Category = "entertainment"
	CategoryBills         Category = "bills"
	CategoryHealth        Category = "health"
	CategoryOther         Category = "other"
)

// Mood captures how the user felt when the money left their pocket.
type Mood string

const (
	MoodHungry   Mood = "hungry"
	MoodBored    Mood = "bored"
	MoodStressed Mood = "stressed"
	MoodTired    Mood = "tired"
)

// Type is the post-hoc honesty check on a spend. A record is created
// without one and keeps whatever the user picks; it is never unset.
type Type string

const (
	TypeNeed    Type = "need"
	TypeWant    Type = "want"
	TypeImpulse Type = "impulse"
)

var (
	ErrNotFound        = errors.New("spend not found")
	ErrUnauthenticated = errors.New("no signed-in user")

	// ErrValidation is wrapped by every input rejection so callers can
	// tell a bad request from a store failure.
	ErrValidation = errors.New("invalid spend")

	ErrInvalidAmount = fmt.Errorf("%w: amount must be positive", ErrValidation)
)

// Spend is one logged expenditure.
type Spend struct {
	ID          uuid.UUID
	Amount      float64
	Category    Category
	Mood        Mood
	Date        time.Time // calendar day the spend occurred, user-chosen
	Type        Type      // empty until classified
	Description string
	CreatedAt   time.Time
}

func Categories() []Category {
	return []Category{
		CategoryFood, CategoryTransport, CategoryShopping,
		CategoryEntertainment, CategoryBills, CategoryHealth, CategoryOther,
	}
}

func Moods() []Mood {
	return []Mood{MoodHungry, MoodBored, MoodStressed, MoodTired}
}

func Types() []Type {
	return []Type{TypeNeed, TypeWant, TypeImpulse}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if Category(s) == c {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: unknown category %q", ErrValidation, s)
}

func ParseMood(s string) (Mood, error) {
	for _, m := range Moods() {
		if Mood(s) == m {
			return m, nil
		}
	}

	return "", fmt.Errorf("%w: unknown mood %q", ErrValidation, s)
}

func ParseType(s string) (Type, error) {
	for _, t := range Types() {
		if Type(s) == t {
			return t, nil
		}
	}

	return "", fmt.Errorf("%w: unknown spend type %q", ErrValidation, s)
}
