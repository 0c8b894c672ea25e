package model

// Note holds the field values a note type's templates render into cards.
type Note struct {
	// ID is the note's unique identifier (epoch milliseconds at creation).
	ID int64

	// NoteTypeID references the note type describing Fields.
	NoteTypeID int64

	// Tags is the space-delimited, space-wrapped tag string as stored
	// (" tag1 tag2 "), or "" when the note is untagged.
	Tags string

	// Fields are the field values in ordinal order.
	Fields []string

	// SortField is the value of the designated sort field.
	SortField string

	// Checksum is the duplicate-detection checksum of the stripped
	// first field.
	Checksum uint32
}
