// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/storiz/ent/storyevent"
)

// StoryEvent is the model entity for the StoryEvent schema.
type StoryEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Recommended story theme
	Theme string `json:"theme,omitempty"`
	// Target read-aloud duration
	SuggestedLengthSecs int `json:"suggested_length_secs,omitempty"`
	// Generated story title, empty when only recommended
	Title string `json:"title,omitempty"`
	// Whether the story text was actually generated
	Generated    bool `json:"generated,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StoryEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldGenerated:
			values[i] = new(sql.NullBool)
		case storyevent.FieldID, storyevent.FieldSequence, storyevent.FieldSuggestedLengthSecs:
			values[i] = new(sql.NullInt64)
		case storyevent.FieldTheme, storyevent.FieldTitle:
			values[i] = new(sql.NullString)
		case storyevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StoryEvent fields.
func (_m *StoryEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case storyevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case storyevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case storyevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case storyevent.FieldTheme:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field theme", values[i])
			} else if value.Valid {
				_m.Theme = value.String
			}
		case storyevent.FieldSuggestedLengthSecs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field suggested_length_secs", values[i])
			} else if value.Valid {
				_m.SuggestedLengthSecs = int(value.Int64)
			}
		case storyevent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case storyevent.FieldGenerated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field generated", values[i])
			} else if value.Valid {
				_m.Generated = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StoryEvent.
// This includes values selected through modifiers, order, etc.
func (_m *StoryEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StoryEvent.
// Note that you need to call StoryEvent.Unwrap() before calling this method if this StoryEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StoryEvent) Update() *StoryEventUpdateOne {
	return NewStoryEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StoryEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StoryEvent) Unwrap() *StoryEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StoryEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StoryEvent) String() string {
	var builder strings.Builder
	builder.WriteString("StoryEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("theme=")
	builder.WriteString(_m.Theme)
	builder.WriteString(", ")
	builder.WriteString("suggested_length_secs=")
	builder.WriteString(fmt.Sprintf("%v", _m.SuggestedLengthSecs))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("generated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Generated))
	builder.WriteByte(')')
	return builder.String()
}

// StoryEvents is a parsable slice of StoryEvent.
type StoryEvents []*StoryEvent
