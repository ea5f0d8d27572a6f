package form

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionMultiSelect    QuestionType = "multi_select"
	QuestionTrueFalse      QuestionType = "true_false"
)

// QuestionTypes lists the types in the order the console offers them.
var QuestionTypes = []QuestionType{
	QuestionShortAnswer,
	QuestionMultipleChoice,
	QuestionMultiSelect,
	QuestionTrueFalse,
}

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionShortAnswer, QuestionMultipleChoice, QuestionMultiSelect, QuestionTrueFalse:
		return true
	}
	return false
}

// IsChoice reports whether options are meaningful for the type.
func (t QuestionType) IsChoice() bool {
	return t == QuestionMultipleChoice || t == QuestionMultiSelect
}

func (t QuestionType) Label() string {
	switch t {
	case QuestionShortAnswer:
		return "Short answer"
	case QuestionMultipleChoice:
		return "Multiple choice"
	case QuestionMultiSelect:
		return "Multi select"
	case QuestionTrueFalse:
		return "True / false"
	}
	return string(t)
}

// Form is a named collection of questions owned by one administrator.
type Form struct {
	ID          string     `json:"id" gorm:"type:uuid;primaryKey"`
	AdminID     string     `json:"admin_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	Questions   []Question `json:"questions,omitempty" gorm:"foreignKey:FormID;constraint:OnDelete:RESTRICT"`
}

func (Form) TableName() string {
	return "forms"
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// Question is a single prompt within a form. Options are stored as given and
// only carry meaning for choice types.
type Question struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	FormID    string         `json:"form_id" gorm:"type:uuid;not null;index"`
	Type      QuestionType   `json:"type" gorm:"size:32;not null"`
	Title     string         `json:"title" gorm:"type:text;not null"`
	Options   pq.StringArray `json:"options,omitempty" gorm:"type:text[]"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
}

func (Question) TableName() string {
	return "questions"
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}

// VisibleOptions returns the options a view should render for the question.
func (q Question) VisibleOptions() []string {
	if !q.Type.IsChoice() {
		return nil
	}
	return q.Options
}

// NormalizeOptions maps an empty option list to nil so it is stored as NULL.
func NormalizeOptions(opts []string) pq.StringArray {
	if len(opts) == 0 {
		return nil
	}
	return pq.StringArray(opts)
}
