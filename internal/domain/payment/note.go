package payment

import (
	"strconv"
	"strings"
)

// NoteFields are the values carried in an order note of the form
// "book_id:42|email:rider@example.com".
type NoteFields struct {
	BookID int64
	Email  string
}

// ParseNote reads the key:value|key:value note format. Unknown keys are ignored
// and the first occurrence of a key wins.
func ParseNote(note string) NoteFields {
	var f NoteFields
	for _, part := range strings.Split(note, "|") {
		key, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case MetadataBookID:
			if f.BookID == 0 {
				f.BookID = parseBookID(value)
			}
		case "email":
			if f.Email == "" {
				f.Email = value
			}
		}
	}
	return f
}

// FormatNote is the inverse of ParseNote, used when creating checkouts.
func FormatNote(bookID int64, email string) string {
	return MetadataBookID + ":" + strconv.FormatInt(bookID, 10) + "|email:" + email
}
