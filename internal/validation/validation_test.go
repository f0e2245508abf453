package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, ValidateRequired("value", "field"))
	assert.Error(t, ValidateRequired("", "field"))
	assert.Error(t, ValidateRequired("   ", "field"))
}

func TestValidateMaxLength(t *testing.T) {
	assert.NoError(t, ValidateMaxLength("short", 10, "field"))
	assert.Error(t, ValidateMaxLength(strings.Repeat("x", 11), 10, "field"))
	// Length counts runes, not bytes.
	assert.NoError(t, ValidateMaxLength("äääää", 5, "field"))
}

func TestValidateUUID(t *testing.T) {
	assert.NoError(t, ValidateUUID(uuid.New().String(), "id"))
	assert.Error(t, ValidateUUID("not-a-uuid", "id"))
	assert.Error(t, ValidateUUID("", "id"))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("anna@example.com"))
	assert.NoError(t, ValidateEmail("anna+tag@example.co.uk"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("@example.com"))
	assert.Error(t, ValidateEmail("Anna <anna@example.com>"))
	assert.Error(t, ValidateEmail(""))
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-08-30", "work_date"))
	assert.Error(t, ValidateDate("30.08.2026", "work_date"))
	assert.Error(t, ValidateDate("2026-13-01", "work_date"))
}

func TestValidateClockTime(t *testing.T) {
	assert.NoError(t, ValidateClockTime("09:30", "start_time"))
	assert.NoError(t, ValidateClockTime("23:59", "start_time"))
	assert.Error(t, ValidateClockTime("9:30pm", "start_time"))
	assert.Error(t, ValidateClockTime("25:00", "start_time"))
}

func TestValidateNonNegativeInt(t *testing.T) {
	assert.NoError(t, ValidateNonNegativeInt("0", "count"))
	assert.NoError(t, ValidateNonNegativeInt("42", "count"))
	assert.Error(t, ValidateNonNegativeInt("-1", "count"))
	assert.Error(t, ValidateNonNegativeInt("many", "count"))
}

func TestValidateEventName(t *testing.T) {
	v := EventValidation{}

	assert.NoError(t, v.ValidateEventName("Sommerfest 2026"))
	assert.Error(t, v.ValidateEventName(""))
	assert.Error(t, v.ValidateEventName(strings.Repeat("x", 201)))
}

func validAnswers() map[string]any {
	return map[string]any{
		reporting.AnswerPromoterName: "Anna Schmidt",
		reporting.AnswerWorkDate:     "2026-08-30",
		reporting.AnswerStartTime:    "09:00",
		reporting.AnswerLeaveTime:    "17:30",
		reporting.AnswerFrequency:    "stark",
		reporting.AnswerContactCount: "120",
		reporting.AnswerPauseMinutes: "45",
		reporting.AnswerNotes:        "Busy afternoon",
	}
}

func TestValidateAnswersAcceptsCompleteRecord(t *testing.T) {
	v := ReportingValidation{}
	assert.NoError(t, v.ValidateAnswers(validAnswers()))
}

func TestValidateAnswersRequiresCoreFields(t *testing.T) {
	v := ReportingValidation{}

	for _, key := range []string{
		reporting.AnswerPromoterName,
		reporting.AnswerWorkDate,
		reporting.AnswerStartTime,
		reporting.AnswerLeaveTime,
	} {
		answers := validAnswers()
		delete(answers, key)
		assert.Error(t, v.ValidateAnswers(answers), "missing %s should fail", key)
	}
}

func TestValidateAnswersOptionalFieldsMayBeAbsent(t *testing.T) {
	v := ReportingValidation{}

	answers := validAnswers()
	delete(answers, reporting.AnswerFrequency)
	delete(answers, reporting.AnswerContactCount)
	delete(answers, reporting.AnswerPauseMinutes)
	delete(answers, reporting.AnswerNotes)

	assert.NoError(t, v.ValidateAnswers(answers))
}

func TestValidateAnswersRejectsBadFormats(t *testing.T) {
	v := ReportingValidation{}

	cases := map[string]string{
		reporting.AnswerWorkDate:     "yesterday",
		reporting.AnswerStartTime:    "nine",
		reporting.AnswerLeaveTime:    "17h30",
		reporting.AnswerFrequency:    "extrem",
		reporting.AnswerContactCount: "-5",
		reporting.AnswerPauseMinutes: "a few",
	}

	for key, bad := range cases {
		answers := validAnswers()
		answers[key] = bad
		assert.Error(t, v.ValidateAnswers(answers), "bad %s should fail", key)
	}
}

func TestValidateAnswersAllowsUnknownKeys(t *testing.T) {
	v := ReportingValidation{}

	answers := validAnswers()
	answers["weather"] = "sunny"

	require.NoError(t, v.ValidateAnswers(answers))
}
