package reporting

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer keys used inside the Answers record. The record is loosely typed on
// purpose: the form evolved faster than the schema and old rows keep whatever
// keys they were submitted with.
const (
	AnswerPromoterName = "promoter_name"
	AnswerWorkDate     = "work_date"
	AnswerStartTime    = "start_time"
	AnswerLeaveTime    = "leave_time"
	AnswerFrequency    = "frequenz"
	AnswerContactCount = "kontakte_count"
	AnswerPauseMinutes = "pause_minutes"
	AnswerNotes        = "notes"
)

// Reporting is a structured workday report submitted by a promoter.
type Reporting struct {
	ID        uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID   uuid.UUID         `json:"event_id" gorm:"type:uuid;not null;index"`
	Answers   datatypes.JSONMap `json:"answers" gorm:"type:jsonb;not null"`
	CreatedAt time.Time         `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName overrides the table name used by GORM
func (Reporting) TableName() string {
	return "reportings"
}

// BeforeCreate sets a UUID before creating the record
func (r *Reporting) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// NewReporting creates a reporting for the given event
func NewReporting(eventID uuid.UUID, answers map[string]any) *Reporting {
	return &Reporting{
		ID:      uuid.New(),
		EventID: eventID,
		Answers: datatypes.JSONMap(answers),
	}
}

// Answer returns the string value for a key, or "" when absent or non-string.
func (r *Reporting) Answer(key string) string {
	if r.Answers == nil {
		return ""
	}
	if s, ok := r.Answers[key].(string); ok {
		return s
	}
	return ""
}

// Frequency is the five-level contact frequency reported for a shift
type Frequency byte

const (
	FrequencyVeryStrong Frequency = iota
	FrequencyStrong
	FrequencyMedium
	FrequencyWeak
	FrequencyVeryWeak
)

func (f Frequency) String() string {
	switch f {
	case FrequencyVeryStrong:
		return "sehr_stark"
	case FrequencyStrong:
		return "stark"
	case FrequencyMedium:
		return "mittel"
	case FrequencyWeak:
		return "schwach"
	case FrequencyVeryWeak:
		return "sehr_schwach"
	default:
		return "unknown"
	}
}

// FrequencyFromString converts a string to a Frequency
func FrequencyFromString(s string) (Frequency, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sehr_stark":
		return FrequencyVeryStrong, true
	case "stark":
		return FrequencyStrong, true
	case "mittel":
		return FrequencyMedium, true
	case "schwach":
		return FrequencyWeak, true
	case "sehr_schwach":
		return FrequencyVeryWeak, true
	default:
		return FrequencyMedium, false
	}
}

// MarshalJSON implements the json.Marshaler interface
func (f Frequency) MarshalJSON() ([]byte, error) {
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface
func (f *Frequency) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	freq, valid := FrequencyFromString(str)
	if !valid {
		return fmt.Errorf("invalid frequency: %s", str)
	}
	*f = freq
	return nil
}

// Scan implements the sql.Scanner interface for database deserialization
func (f *Frequency) Scan(value interface{}) error {
	if value == nil {
		*f = FrequencyMedium
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into Frequency", value)
	}

	freq, valid := FrequencyFromString(str)
	if !valid {
		return fmt.Errorf("invalid frequency value: %s", str)
	}
	*f = freq
	return nil
}

// Value implements the driver.Valuer interface for database serialization
func (f Frequency) Value() (driver.Value, error) {
	return f.String(), nil
}
