package services

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	MsgTextValueEmpty   = "textValue must not be empty"
	MsgEmailEmpty       = "email must not be empty"
	MsgEmailInvalid     = "email is not valid"
	MsgTextValueTooLong = "textValue must be at most 255 characters"
	MsgEmailTooLong     = "email must be at most 255 characters"
	MsgRoomNumberEmpty  = "roomNumber must not be empty"
	MsgRoomNumberLong   = "roomNumber must be at most 50 characters"
	MsgNumGuestsInvalid = "numGuests must be a positive whole number"
	MsgEntryIDRequired  = "entryId is required"
	MsgEntryNotFound    = "entry not found"
	MsgUnexpected       = "An unexpected error occurred"
)

// Column sizes of Entries.textValue, Entries.email and RoomBookings.roomNumber,
// counted in characters as MySQL does for utf8mb4.
const (
	MaxTextValueLen  = 255
	MaxEmailLen      = 255
	MaxRoomNumberLen = 50
)

// local@domain.tld: no whitespace, one @, a dot with something on both sides
// after the @. \s is ASCII only in RE2, so \p{Z} covers NBSP and the other
// Unicode spaces.
var emailPattern = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

// IsValidEmail checks the shape only; deliverability is not our concern.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

func validateEntry(textValue, email string) error {
	if textValue == "" {
		return ValidationError(MsgTextValueEmpty)
	}
	if utf8.RuneCountInString(textValue) > MaxTextValueLen {
		return ValidationError(MsgTextValueTooLong)
	}
	if email == "" {
		return ValidationError(MsgEmailEmpty)
	}
	if utf8.RuneCountInString(email) > MaxEmailLen {
		return ValidationError(MsgEmailTooLong)
	}
	if !IsValidEmail(email) {
		return ValidationError(MsgEmailInvalid)
	}
	return nil
}

func validateBooking(entryID uint, roomNumber string, numGuests int) error {
	if roomNumber == "" {
		return ValidationError(MsgRoomNumberEmpty)
	}
	if utf8.RuneCountInString(roomNumber) > MaxRoomNumberLen {
		return ValidationError(MsgRoomNumberLong)
	}
	if numGuests < 1 || numGuests > math.MaxInt32 {
		return ValidationError(MsgNumGuestsInvalid)
	}
	if entryID == 0 {
		return ValidationError(MsgEntryIDRequired)
	}
	return nil
}

// ParseGuestCount converts a decoded JSON value into a guest count. Integral
// numbers and base-10 integer strings are accepted; everything else,
// including fractions and partially numeric strings, is a validation error.
func ParseGuestCount(raw any) (int, error) {
	var n int64
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) || v > math.MaxInt32 || v < math.MinInt32 {
			return 0, ValidationError(MsgNumGuestsInvalid)
		}
		n = int64(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	case json.Number:
		// same rules as the float64 a plain decoder would have produced
		f, err := v.Float64()
		if err != nil {
			return 0, ValidationError(MsgNumGuestsInvalid)
		}
		return ParseGuestCount(f)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return 0, ValidationError(MsgNumGuestsInvalid)
		}
		n = i
	default:
		return 0, ValidationError(MsgNumGuestsInvalid)
	}

	if n < 1 || n > math.MaxInt32 {
		return 0, ValidationError(MsgNumGuestsInvalid)
	}
	return int(n), nil
}
