// Code generated by ent, DO NOT EDIT.

package storyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the storyevent type in the database.
	Label = "story_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldSuggestedLengthSecs holds the string denoting the suggested_length_secs field in the database.
	FieldSuggestedLengthSecs = "suggested_length_secs"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldGenerated holds the string denoting the generated field in the database.
	FieldGenerated = "generated"
	// Table holds the table name of the storyevent in the database.
	Table = "story_events"
)

// Columns holds all SQL columns for storyevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldTheme,
	FieldSuggestedLengthSecs,
	FieldTitle,
	FieldGenerated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ThemeValidator is a validator for the "theme" field. It is called by the builders before save.
	ThemeValidator func(string) error
	// DefaultTitle holds the default value on creation for the "title" field.
	DefaultTitle string
	// DefaultGenerated holds the default value on creation for the "generated" field.
	DefaultGenerated bool
)

// OrderOption defines the ordering options for the StoryEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// BySuggestedLengthSecs orders the results by the suggested_length_secs field.
func BySuggestedLengthSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestedLengthSecs, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByGenerated orders the results by the generated field.
func ByGenerated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenerated, opts...).ToFunc()
}
