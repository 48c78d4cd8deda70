// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mkrishnan/storyfox/ent/answerevent"
	"github.com/mkrishnan/storyfox/ent/llmrequestevent"
	"github.com/mkrishnan/storyfox/ent/schema"
	"github.com/mkrishnan/storyfox/ent/sessionevent"
	"github.com/mkrishnan/storyfox/ent/snapshot"
	"github.com/mkrishnan/storyfox/ent/storyrecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescStoryID is the schema descriptor for story_id field.
	answereventDescStoryID := answereventFields[1].Descriptor()
	// answerevent.StoryIDValidator is a validator for the "story_id" field. It is called by the builders before save.
	answerevent.StoryIDValidator = answereventDescStoryID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSkill is the schema descriptor for skill field.
	answereventDescSkill := answereventFields[3].Descriptor()
	// answerevent.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	answerevent.SkillValidator = answereventDescSkill.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescStoryID is the schema descriptor for story_id field.
	sessioneventDescStoryID := sessioneventFields[1].Descriptor()
	// sessionevent.StoryIDValidator is a validator for the "story_id" field. It is called by the builders before save.
	sessionevent.StoryIDValidator = sessioneventDescStoryID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[3].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescCached is the schema descriptor for cached field.
	sessioneventDescCached := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultCached holds the default value on creation for the cached field.
	sessionevent.DefaultCached = sessioneventDescCached.Default.(bool)
	// sessioneventDescQuestionsAttempted is the schema descriptor for questions_attempted field.
	sessioneventDescQuestionsAttempted := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsAttempted holds the default value on creation for the questions_attempted field.
	sessionevent.DefaultQuestionsAttempted = sessioneventDescQuestionsAttempted.Default.(int)
	// sessioneventDescQuestionsCorrect is the schema descriptor for questions_correct field.
	sessioneventDescQuestionsCorrect := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultQuestionsCorrect holds the default value on creation for the questions_correct field.
	sessionevent.DefaultQuestionsCorrect = sessioneventDescQuestionsCorrect.Default.(int)
	// sessioneventDescReadingSecs is the schema descriptor for reading_secs field.
	sessioneventDescReadingSecs := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultReadingSecs holds the default value on creation for the reading_secs field.
	sessionevent.DefaultReadingSecs = sessioneventDescReadingSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	storyrecordFields := schema.StoryRecord{}.Fields()
	_ = storyrecordFields
	// storyrecordDescStoryID is the schema descriptor for story_id field.
	storyrecordDescStoryID := storyrecordFields[0].Descriptor()
	// storyrecord.StoryIDValidator is a validator for the "story_id" field. It is called by the builders before save.
	storyrecord.StoryIDValidator = storyrecordDescStoryID.Validators[0].(func(string) error)
	// storyrecordDescTitle is the schema descriptor for title field.
	storyrecordDescTitle := storyrecordFields[1].Descriptor()
	// storyrecord.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	storyrecord.TitleValidator = storyrecordDescTitle.Validators[0].(func(string) error)
	// storyrecordDescLanguage is the schema descriptor for language field.
	storyrecordDescLanguage := storyrecordFields[2].Descriptor()
	// storyrecord.DefaultLanguage holds the default value on creation for the language field.
	storyrecord.DefaultLanguage = storyrecordDescLanguage.Default.(string)
	// storyrecordDescTheme is the schema descriptor for theme field.
	storyrecordDescTheme := storyrecordFields[3].Descriptor()
	// storyrecord.DefaultTheme holds the default value on creation for the theme field.
	storyrecord.DefaultTheme = storyrecordDescTheme.Default.(string)
	// storyrecordDescWordCount is the schema descriptor for word_count field.
	storyrecordDescWordCount := storyrecordFields[4].Descriptor()
	// storyrecord.DefaultWordCount holds the default value on creation for the word_count field.
	storyrecord.DefaultWordCount = storyrecordDescWordCount.Default.(int)
	// storyrecordDescCreatedAt is the schema descriptor for created_at field.
	storyrecordDescCreatedAt := storyrecordFields[6].Descriptor()
	// storyrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	storyrecord.DefaultCreatedAt = storyrecordDescCreatedAt.Default.(func() time.Time)
}
