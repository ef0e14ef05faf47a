// Code generated by ent, DO NOT EDIT.

package storyevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/storiz/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTheme, v))
}

// SuggestedLengthSecs applies equality check predicate on the "suggested_length_secs" field. It's identical to SuggestedLengthSecsEQ.
func SuggestedLengthSecs(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSuggestedLengthSecs, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTitle, v))
}

// Generated applies equality check predicate on the "generated" field. It's identical to GeneratedEQ.
func Generated(v bool) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldGenerated, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldTheme, v))
}

// SuggestedLengthSecsEQ applies the EQ predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsEQ(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldSuggestedLengthSecs, v))
}

// SuggestedLengthSecsNEQ applies the NEQ predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsNEQ(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldSuggestedLengthSecs, v))
}

// SuggestedLengthSecsIn applies the In predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsIn(vs ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldSuggestedLengthSecs, vs...))
}

// SuggestedLengthSecsNotIn applies the NotIn predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsNotIn(vs ...int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldSuggestedLengthSecs, vs...))
}

// SuggestedLengthSecsGT applies the GT predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsGT(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldSuggestedLengthSecs, v))
}

// SuggestedLengthSecsGTE applies the GTE predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsGTE(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldSuggestedLengthSecs, v))
}

// SuggestedLengthSecsLT applies the LT predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsLT(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldSuggestedLengthSecs, v))
}

// SuggestedLengthSecsLTE applies the LTE predicate on the "suggested_length_secs" field.
func SuggestedLengthSecsLTE(v int) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldSuggestedLengthSecs, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldContainsFold(FieldTitle, v))
}

// GeneratedEQ applies the EQ predicate on the "generated" field.
func GeneratedEQ(v bool) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldEQ(FieldGenerated, v))
}

// GeneratedNEQ applies the NEQ predicate on the "generated" field.
func GeneratedNEQ(v bool) predicate.StoryEvent {
	return predicate.StoryEvent(sql.FieldNEQ(FieldGenerated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoryEvent) predicate.StoryEvent {
	return predicate.StoryEvent(sql.NotPredicates(p))
}
