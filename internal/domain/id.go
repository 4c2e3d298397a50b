package domain

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDLength is the length of the textual form of an ID.
const IDLength = 24

// ID is a 12-byte object identifier rendered as 24 lowercase hex characters.
// The first four bytes hold the creation time in unix seconds.
type ID string

// NewID generates a new ID stamped with the current time.
func NewID() ID {
	return newIDAt(time.Now())
}

func newIDAt(t time.Time) ID {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(t.Unix()))
	u := uuid.New()
	copy(b[4:], u[:8])
	return ID(hex.EncodeToString(b[:]))
}

// ParseID validates raw as an ID. field names the input for the
// ValidationError returned on malformed values. Only the canonical form is
// accepted: no surrounding spaces, no upper case.
func ParseID(field, raw string) (ID, error) {
	if !IsValidID(raw) {
		return "", NewValidationError(field, "must be a 24 character hex id")
	}
	return ID(raw), nil
}

// IsValidID reports whether s is exactly 24 lowercase hex characters.
func IsValidID(s string) bool {
	if len(s) != IDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

// Time returns the creation time encoded in the id.
func (id ID) Time() time.Time {
	b, err := hex.DecodeString(string(id))
	if err != nil || len(b) != 12 {
		return time.Time{}
	}
	return time.Unix(int64(binary.BigEndian.Uint32(b[:4])), 0).UTC()
}

// Value implements driver.Valuer.
func (id ID) Value() (driver.Value, error) {
	return string(id), nil
}

// Scan implements sql.Scanner.
func (id *ID) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*id = ID(strings.TrimSpace(v))
	case []byte:
		*id = ID(strings.TrimSpace(string(v)))
	case nil:
		*id = ""
	default:
		return fmt.Errorf("id: cannot scan %T", src)
	}
	return nil
}

// IDPtr returns a pointer to id.
func IDPtr(id ID) *ID { return &id }
