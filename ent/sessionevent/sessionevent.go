// Code generated by ent, DO NOT EDIT.

package sessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionevent type in the database.
	Label = "session_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStoryID holds the string denoting the story_id field in the database.
	FieldStoryID = "story_id"
	// FieldStoryTitle holds the string denoting the story_title field in the database.
	FieldStoryTitle = "story_title"
	// FieldAction holds the string denoting the action field in the database.
	FieldAction = "action"
	// FieldCached holds the string denoting the cached field in the database.
	FieldCached = "cached"
	// FieldQuestionsAttempted holds the string denoting the questions_attempted field in the database.
	FieldQuestionsAttempted = "questions_attempted"
	// FieldQuestionsCorrect holds the string denoting the questions_correct field in the database.
	FieldQuestionsCorrect = "questions_correct"
	// FieldReadingSecs holds the string denoting the reading_secs field in the database.
	FieldReadingSecs = "reading_secs"
	// Table holds the table name of the sessionevent in the database.
	Table = "session_events"
)

// Columns holds all SQL columns for sessionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldStoryID,
	FieldStoryTitle,
	FieldAction,
	FieldCached,
	FieldQuestionsAttempted,
	FieldQuestionsCorrect,
	FieldReadingSecs,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// StoryIDValidator is a validator for the "story_id" field. It is called by the builders before save.
	StoryIDValidator func(string) error
	// ActionValidator is a validator for the "action" field. It is called by the builders before save.
	ActionValidator func(string) error
	// DefaultCached holds the default value on creation for the "cached" field.
	DefaultCached bool
	// DefaultQuestionsAttempted holds the default value on creation for the "questions_attempted" field.
	DefaultQuestionsAttempted int
	// DefaultQuestionsCorrect holds the default value on creation for the "questions_correct" field.
	DefaultQuestionsCorrect int
	// DefaultReadingSecs holds the default value on creation for the "reading_secs" field.
	DefaultReadingSecs int
)

// OrderOption defines the ordering options for the SessionEvent queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStoryID orders the results by the story_id field.
func ByStoryID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryID, opts...).ToFunc()
}

// ByStoryTitle orders the results by the story_title field.
func ByStoryTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoryTitle, opts...).ToFunc()
}

// ByAction orders the results by the action field.
func ByAction(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAction, opts...).ToFunc()
}

// ByCached orders the results by the cached field.
func ByCached(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCached, opts...).ToFunc()
}

// ByQuestionsAttempted orders the results by the questions_attempted field.
func ByQuestionsAttempted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsAttempted, opts...).ToFunc()
}

// ByQuestionsCorrect orders the results by the questions_correct field.
func ByQuestionsCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionsCorrect, opts...).ToFunc()
}

// ByReadingSecs orders the results by the reading_secs field.
func ByReadingSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReadingSecs, opts...).ToFunc()
}
