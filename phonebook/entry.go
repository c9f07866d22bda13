package phonebook

import (
	"fmt"
	"strconv"
)

const (
	RoomDigits  = 4
	PhoneDigits = 8

	MaxRoom  = 9999
	MaxPhone = 99999999
)

type Entry struct {
	Room  int   `json:"room"`
	Phone int64 `json:"phone"`
}

// EntryID is the 1-based position of an entry at insertion time. It is not
// stable across deletes or sorts.
type EntryID int

func (e Entry) String() string {
	return fmt.Sprintf("%d,%d", e.Room, e.Phone)
}

// checkDigits returns ErrInvalidCharacter when s is empty or has anything but
// ASCII decimal digits, and ErrOutOfRange when it has more than max digits.
func checkDigits(s string, max int) error {
	if s == "" {
		return ErrInvalidCharacter
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return ErrInvalidCharacter
		}
	}
	// only ascii digits left, bytes are characters
	if len(s) > max {
		return ErrOutOfRange
	}
	return nil
}

func ParseRoom(s string) (int, error) {
	if err := checkDigits(s, RoomDigits); err != nil {
		return 0, fmt.Errorf("room '%s': %w", s, err)
	}
	room, _ := strconv.Atoi(s) // digits already checked
	if err := validRoom(room); err != nil {
		return 0, fmt.Errorf("room '%s': %w", s, err)
	}
	return room, nil
}

func ParsePhone(s string) (int64, error) {
	if err := checkDigits(s, PhoneDigits); err != nil {
		return 0, fmt.Errorf("phone '%s': %w", s, err)
	}
	phone, _ := strconv.ParseInt(s, 10, 64)
	if err := validPhone(phone); err != nil {
		return 0, fmt.Errorf("phone '%s': %w", s, err)
	}
	return phone, nil
}

func validRoom(room int) error {
	if room < 1 || room > MaxRoom {
		return ErrOutOfRange
	}
	return nil
}

func validPhone(phone int64) error {
	if phone < 1 || phone > MaxPhone {
		return ErrOutOfRange
	}
	return nil
}

// Validate checks both fields are within range.
func (e Entry) Validate() error {
	if err := validRoom(e.Room); err != nil {
		return fmt.Errorf("room %d: %w", e.Room, err)
	}
	if err := validPhone(e.Phone); err != nil {
		return fmt.Errorf("phone %d: %w", e.Phone, err)
	}
	return nil
}
