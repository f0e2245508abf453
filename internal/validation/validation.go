package validation

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/gravadigital/promoter-portal-api/internal/domain/reporting"
)

// ValidateRequired validates that a field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(fieldName + " is required")
	}
	return nil
}

// ValidateMaxLength validates the maximum length of a string
func ValidateMaxLength(value string, maxLength int, fieldName string) error {
	if utf8.RuneCountInString(value) > maxLength {
		return fmt.Errorf("%s must be at most %d characters long", fieldName, maxLength)
	}
	return nil
}

// ValidateUUID validates that a string is a valid UUID
func ValidateUUID(value, fieldName string) error {
	if _, err := uuid.Parse(value); err != nil {
		return errors.New(fieldName + " must be a valid UUID")
	}
	return nil
}

// ValidateEmail validates the email address format
func ValidateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errors.New("email must have a valid format")
	}
	return nil
}

// ValidateDate validates a YYYY-MM-DD date string
func ValidateDate(value, fieldName string) error {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return errors.New(fieldName + " must be a date in YYYY-MM-DD format")
	}
	return nil
}

// ValidateClockTime validates an HH:MM time-of-day string
func ValidateClockTime(value, fieldName string) error {
	if _, err := time.Parse("15:04", value); err != nil {
		return errors.New(fieldName + " must be a time in HH:MM format")
	}
	return nil
}

// ValidateNonNegativeInt validates a non-negative integer string
func ValidateNonNegativeInt(value, fieldName string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return errors.New(fieldName + " must be a non-negative number")
	}
	return nil
}

// EventValidation contains event-specific validations
type EventValidation struct{}

// ValidateEventName validates the name of an event
func (v EventValidation) ValidateEventName(name string) error {
	if err := ValidateRequired(name, "name"); err != nil {
		return err
	}
	if err := ValidateMaxLength(name, 200, "name"); err != nil {
		return err
	}
	return nil
}

// ReportingValidation contains reporting-specific validations
type ReportingValidation struct{}

// ValidateAnswers checks a reporting answer record before it is stored.
// Required fields, time/date formats and the frequency enum are checked;
// unknown extra keys are allowed through.
func (v ReportingValidation) ValidateAnswers(answers map[string]any) error {
	str := func(key string) string {
		s, _ := answers[key].(string)
		return s
	}

	if err := ValidateRequired(str(reporting.AnswerPromoterName), "promoter_name"); err != nil {
		return err
	}

	if err := ValidateRequired(str(reporting.AnswerWorkDate), "work_date"); err != nil {
		return err
	}
	if err := ValidateDate(str(reporting.AnswerWorkDate), "work_date"); err != nil {
		return err
	}

	if err := ValidateRequired(str(reporting.AnswerStartTime), "start_time"); err != nil {
		return err
	}
	if err := ValidateClockTime(str(reporting.AnswerStartTime), "start_time"); err != nil {
		return err
	}

	if err := ValidateRequired(str(reporting.AnswerLeaveTime), "leave_time"); err != nil {
		return err
	}
	if err := ValidateClockTime(str(reporting.AnswerLeaveTime), "leave_time"); err != nil {
		return err
	}

	if freq := str(reporting.AnswerFrequency); freq != "" {
		if _, valid := reporting.FrequencyFromString(freq); !valid {
			return errors.New("frequenz must be one of: sehr_stark, stark, mittel, schwach, sehr_schwach")
		}
	}

	if contacts := str(reporting.AnswerContactCount); contacts != "" {
		if err := ValidateNonNegativeInt(contacts, "kontakte_count"); err != nil {
			return err
		}
	}

	if pause := str(reporting.AnswerPauseMinutes); pause != "" {
		if err := ValidateNonNegativeInt(pause, "pause_minutes"); err != nil {
			return err
		}
	}

	return nil
}
