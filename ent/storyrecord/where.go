// Code generated by ent, DO NOT EDIT.

package storyrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mkrishnan/storyfox/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldID, id))
}

// StoryID applies equality check predicate on the "story_id" field. It's identical to StoryIDEQ.
func StoryID(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldStoryID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldLanguage, v))
}

// Theme applies equality check predicate on the "theme" field. It's identical to ThemeEQ.
func Theme(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldTheme, v))
}

// WordCount applies equality check predicate on the "word_count" field. It's identical to WordCountEQ.
func WordCount(v int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldWordCount, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v []byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldContent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// StoryIDEQ applies the EQ predicate on the "story_id" field.
func StoryIDEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldStoryID, v))
}

// StoryIDNEQ applies the NEQ predicate on the "story_id" field.
func StoryIDNEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldStoryID, v))
}

// StoryIDIn applies the In predicate on the "story_id" field.
func StoryIDIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldStoryID, vs...))
}

// StoryIDNotIn applies the NotIn predicate on the "story_id" field.
func StoryIDNotIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldStoryID, vs...))
}

// StoryIDGT applies the GT predicate on the "story_id" field.
func StoryIDGT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldStoryID, v))
}

// StoryIDGTE applies the GTE predicate on the "story_id" field.
func StoryIDGTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldStoryID, v))
}

// StoryIDLT applies the LT predicate on the "story_id" field.
func StoryIDLT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldStoryID, v))
}

// StoryIDLTE applies the LTE predicate on the "story_id" field.
func StoryIDLTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldStoryID, v))
}

// StoryIDContains applies the Contains predicate on the "story_id" field.
func StoryIDContains(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContains(FieldStoryID, v))
}

// StoryIDHasPrefix applies the HasPrefix predicate on the "story_id" field.
func StoryIDHasPrefix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasPrefix(FieldStoryID, v))
}

// StoryIDHasSuffix applies the HasSuffix predicate on the "story_id" field.
func StoryIDHasSuffix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasSuffix(FieldStoryID, v))
}

// StoryIDEqualFold applies the EqualFold predicate on the "story_id" field.
func StoryIDEqualFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEqualFold(FieldStoryID, v))
}

// StoryIDContainsFold applies the ContainsFold predicate on the "story_id" field.
func StoryIDContainsFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContainsFold(FieldStoryID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContainsFold(FieldLanguage, v))
}

// ThemeEQ applies the EQ predicate on the "theme" field.
func ThemeEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldTheme, v))
}

// ThemeNEQ applies the NEQ predicate on the "theme" field.
func ThemeNEQ(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldTheme, v))
}

// ThemeIn applies the In predicate on the "theme" field.
func ThemeIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldTheme, vs...))
}

// ThemeNotIn applies the NotIn predicate on the "theme" field.
func ThemeNotIn(vs ...string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldTheme, vs...))
}

// ThemeGT applies the GT predicate on the "theme" field.
func ThemeGT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldTheme, v))
}

// ThemeGTE applies the GTE predicate on the "theme" field.
func ThemeGTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldTheme, v))
}

// ThemeLT applies the LT predicate on the "theme" field.
func ThemeLT(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldTheme, v))
}

// ThemeLTE applies the LTE predicate on the "theme" field.
func ThemeLTE(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldTheme, v))
}

// ThemeContains applies the Contains predicate on the "theme" field.
func ThemeContains(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContains(FieldTheme, v))
}

// ThemeHasPrefix applies the HasPrefix predicate on the "theme" field.
func ThemeHasPrefix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasPrefix(FieldTheme, v))
}

// ThemeHasSuffix applies the HasSuffix predicate on the "theme" field.
func ThemeHasSuffix(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldHasSuffix(FieldTheme, v))
}

// ThemeEqualFold applies the EqualFold predicate on the "theme" field.
func ThemeEqualFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEqualFold(FieldTheme, v))
}

// ThemeContainsFold applies the ContainsFold predicate on the "theme" field.
func ThemeContainsFold(v string) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldContainsFold(FieldTheme, v))
}

// WordCountEQ applies the EQ predicate on the "word_count" field.
func WordCountEQ(v int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldWordCount, v))
}

// WordCountNEQ applies the NEQ predicate on the "word_count" field.
func WordCountNEQ(v int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldWordCount, v))
}

// WordCountIn applies the In predicate on the "word_count" field.
func WordCountIn(vs ...int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldWordCount, vs...))
}

// WordCountNotIn applies the NotIn predicate on the "word_count" field.
func WordCountNotIn(vs ...int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldWordCount, vs...))
}

// WordCountGT applies the GT predicate on the "word_count" field.
func WordCountGT(v int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldWordCount, v))
}

// WordCountGTE applies the GTE predicate on the "word_count" field.
func WordCountGTE(v int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldWordCount, v))
}

// WordCountLT applies the LT predicate on the "word_count" field.
func WordCountLT(v int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldWordCount, v))
}

// WordCountLTE applies the LTE predicate on the "word_count" field.
func WordCountLTE(v int) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldWordCount, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v []byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v []byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...[]byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...[]byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v []byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v []byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v []byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v []byte) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldContent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.StoryRecord {
	return predicate.StoryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StoryRecord) predicate.StoryRecord {
	return predicate.StoryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StoryRecord) predicate.StoryRecord {
	return predicate.StoryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StoryRecord) predicate.StoryRecord {
	return predicate.StoryRecord(sql.NotPredicates(p))
}
