package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ListType tags a list for display purposes. It is an open enum: the server
// stores unrecognized values as-is and never validates against this set.
type ListType string

const (
	TypeGrocery      ListType = "grocery"
	TypeHealthcare   ListType = "healthcare"
	TypePersonalCare ListType = "personalcare"
	TypeWishlist     ListType = "wishlist"
)

type ItemPriority string

const (
	PriorityHigh   ItemPriority = "high"
	PriorityMedium ItemPriority = "medium"
	PriorityLow    ItemPriority = "low"
)

// Item is a single entry embedded in a list. Items have no identity outside
// their list; ids are caller-generated and unique per list only.
type Item struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Quantity int          `json:"quantity"`
	Details  string       `json:"details,omitempty"`
	PhotoURL string       `json:"photo_url,omitempty"`
	Priority ItemPriority `json:"priority"`
	Checked  bool         `json:"checked"`
}

// ItemList is the embedded items collection, persisted as a single JSONB
// document. Every write replaces the whole collection atomically.
type ItemList []Item

// Value implements driver.Valuer for JSONB storage
func (il ItemList) Value() (driver.Value, error) {
	if il == nil {
		return json.Marshal(ItemList{})
	}
	return json.Marshal(il)
}

// Scan implements sql.Scanner for JSONB storage
func (il *ItemList) Scan(value interface{}) error {
	if value == nil {
		*il = ItemList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal ItemList value")
	}
	return json.Unmarshal(bytes, il)
}

// StringArray is a custom type for PostgreSQL text[] columns
type StringArray []string

// Value implements driver.Valuer for PostgreSQL text[] storage
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "{}", nil
	}
	escaped := make([]string, len(a))
	for i, s := range a {
		if strings.ContainsAny(s, ",{}\"\\ \t\n") {
			s = strings.ReplaceAll(s, "\\", "\\\\")
			s = strings.ReplaceAll(s, "\"", "\\\"")
			escaped[i] = "\"" + s + "\""
		} else {
			escaped[i] = s
		}
	}
	return "{" + strings.Join(escaped, ",") + "}", nil
}

// Scan implements sql.Scanner for PostgreSQL text[] storage
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = StringArray{}
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return errors.New("failed to scan StringArray: unsupported type")
	}

	str = strings.TrimSpace(str)
	if str == "{}" || str == "" {
		*a = StringArray{}
		return nil
	}
	if len(str) < 2 || str[0] != '{' || str[len(str)-1] != '}' {
		return errors.New("invalid PostgreSQL array format")
	}
	str = str[1 : len(str)-1]

	var result []string
	var current strings.Builder
	inQuotes := false
	escaped := false
	for i := 0; i < len(str); i++ {
		c := str[i]
		if escaped {
			current.WriteByte(c)
			escaped = false
			continue
		}
		switch {
		case c == '\\':
			escaped = true
		case c == '"':
			inQuotes = !inQuotes
		case c == ',' && !inQuotes:
			result = append(result, current.String())
			current.Reset()
		default:
			current.WriteByte(c)
		}
	}
	if current.Len() > 0 || len(result) > 0 {
		result = append(result, current.String())
	}

	*a = result
	return nil
}

// Contains reports whether s is an element of the array.
func (a StringArray) Contains(s string) bool {
	for _, v := range a {
		if v == s {
			return true
		}
	}
	return false
}

// List is a named, typed collection of items owned by one user and optionally
// shared with others. The id is an opaque caller-supplied string (the clients
// derive it from a millisecond timestamp); ownership never changes.
type List struct {
	ID         string      `gorm:"primary_key;size:64" json:"id"`
	UserID     uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string      `gorm:"size:200;not null" json:"name"`
	Type       ListType    `gorm:"size:50;not null" json:"type"`
	SharedWith StringArray `gorm:"type:text[];default:'{}'" json:"shared_with"`
	Items      ItemList    `gorm:"type:jsonb;default:'[]'" json:"items"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// NewTimeID returns a fresh timestamp-derived id, matching the format the
// clients generate for lists and items.
func NewTimeID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// IsOwner reports whether userID owns the list. Only the owner may delete the
// list or mutate its sharing set.
func (l *List) IsOwner(userID uuid.UUID) bool {
	return l.UserID == userID
}

// IsSharedWith reports whether the list has been shared with userID.
func (l *List) IsSharedWith(userID uuid.UUID) bool {
	return l.SharedWith.Contains(userID.String())
}

// CanAccess reports whether userID may read or mutate the list's contents:
// the owner and every shared user qualify.
func (l *List) CanAccess(userID uuid.UUID) bool {
	return l.IsOwner(userID) || l.IsSharedWith(userID)
}
