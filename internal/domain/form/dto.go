package form

type CreateFormDTO struct {
	Title       string              `json:"title" example:"Customer survey"`
	Description *string             `json:"description,omitempty" example:"Quarterly feedback"`
	Questions   []CreateQuestionDTO `json:"questions,omitempty" binding:"omitempty,dive"`
}

// UpdateFormDTO is a partial patch; nil fields are left untouched.
type UpdateFormDTO struct {
	Title       *string `json:"title,omitempty" example:"Customer survey"`
	Description *string `json:"description,omitempty" example:"Quarterly feedback"`
}

type CreateQuestionDTO struct {
	Type    QuestionType `json:"type,omitempty" binding:"omitempty,oneof=short_answer multiple_choice multi_select true_false" example:"short_answer"`
	Title   string       `json:"title" example:"How did you hear about us?"`
	Options []string     `json:"options,omitempty"`
}

// UpdateQuestionDTO replaces title, type and options as a whole.
type UpdateQuestionDTO struct {
	Type    QuestionType `json:"type" binding:"required,oneof=short_answer multiple_choice multi_select true_false" example:"multiple_choice"`
	Title   string       `json:"title" example:"Pick one"`
	Options []string     `json:"options"`
}

type MonthCount struct {
	Month string `json:"month" example:"Jan 2025"`
	Count int    `json:"count" example:"3"`
}

type WeekActivity struct {
	Week         string `json:"week" example:"Jan 2"`
	FormsCreated int    `json:"forms_created" example:"1"`
}

type DashboardStats struct {
	ActiveForms    int            `json:"active_forms"`
	FormsThisWeek  int            `json:"forms_this_week"`
	Admins         int64          `json:"admins"`
	FormsByMonth   []MonthCount   `json:"forms_by_month"`
	WeeklyActivity []WeekActivity `json:"weekly_activity"`
}
