package application

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestListQuestions(t *testing.T) {
	_, svc, m, _ := setupFormServiceMocks(t)
	want := []form.Question{{ID: "q1", Title: "A"}, {ID: "q2", Title: "B"}}

	m.form.EXPECT().FindOwned("f1", "admin-1").Return(form.Form{ID: "f1"}, nil)
	m.question.EXPECT().ListByForm("f1").Return(want, nil)

	got, err := svc.ListQuestions("admin-1", "f1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListQuestions_ForeignForm(t *testing.T) {
	_, svc, m, _ := setupFormServiceMocks(t)
	m.form.EXPECT().FindOwned("f1", "admin-2").Return(form.Form{}, gorm.ErrRecordNotFound)

	_, err := svc.ListQuestions("admin-2", "f1")
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestAddQuestion_BlankTitleNeverReachesRepo(t *testing.T) {
	_, svc, _, c := setupFormServiceMocks(t)

	_, err := svc.AddQuestion(c, "admin-1", "f1", form.CreateQuestionDTO{Title: "  ", Type: form.QuestionTrueFalse})
	assert.EqualError(t, err, "question title is required")
}

func TestAddQuestion_InvalidType(t *testing.T) {
	_, svc, _, c := setupFormServiceMocks(t)

	_, err := svc.AddQuestion(c, "admin-1", "f1", form.CreateQuestionDTO{Title: "Q", Type: "essay"})
	assert.ErrorIs(t, err, ErrInvalidQuestionType)
}

func TestAddQuestion_DefaultsAndEmptyOptions(t *testing.T) {
	_, svc, m, c := setupFormServiceMocks(t)

	m.form.EXPECT().FindOwned("f1", "admin-1").Return(form.Form{ID: "f1"}, nil)
	m.question.EXPECT().Create(gomock.Any()).DoAndReturn(func(q *form.Question) error {
		q.ID = "q1"
		return nil
	})

	q, err := svc.AddQuestion(c, "admin-1", "f1", form.CreateQuestionDTO{Title: "Q1", Options: []string{}})
	require.NoError(t, err)
	assert.Equal(t, form.Question{ID: "q1", FormID: "f1", Type: form.QuestionShortAnswer, Title: "Q1"}, q)
	assert.Nil(t, q.Options)
	assert.Equal(t, []auditCall{{"create", "question", "q1"}}, *m.audits)
}

func TestUpdateQuestion_FullReplaceKeepsOptionsForNonChoice(t *testing.T) {
	_, svc, m, c := setupFormServiceMocks(t)
	existing := form.Question{ID: "q1", FormID: "f1", Type: form.QuestionMultipleChoice, Title: "Pick", Options: pq.StringArray{"a", "b"}}

	m.question.EXPECT().FindByID("q1").Return(existing, nil)
	m.form.EXPECT().FindOwned("f1", "admin-1").Return(form.Form{ID: "f1"}, nil)
	m.question.EXPECT().Save(gomock.Any()).Return(nil)

	q, err := svc.UpdateQuestion(c, "admin-1", "q1", form.UpdateQuestionDTO{
		Title:   "Agree?",
		Type:    form.QuestionTrueFalse,
		Options: []string{"a", "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, form.QuestionTrueFalse, q.Type)
	assert.Equal(t, []string{"a", "b"}, []string(q.Options))
	assert.Nil(t, q.VisibleOptions())
}

func TestUpdateQuestion_ForeignQuestionIsNotFound(t *testing.T) {
	_, svc, m, c := setupFormServiceMocks(t)

	m.question.EXPECT().FindByID("q1").Return(form.Question{ID: "q1", FormID: "f9"}, nil)
	m.form.EXPECT().FindOwned("f9", "admin-1").Return(form.Form{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateQuestion(c, "admin-1", "q1", form.UpdateQuestionDTO{Title: "T", Type: form.QuestionShortAnswer})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestUpdateQuestion_BlankTitle(t *testing.T) {
	_, svc, _, c := setupFormServiceMocks(t)

	_, err := svc.UpdateQuestion(c, "admin-1", "q1", form.UpdateQuestionDTO{Title: "", Type: form.QuestionShortAnswer})
	assert.ErrorIs(t, err, ErrQuestionTitleRequired)
}

func TestDeleteQuestion(t *testing.T) {
	_, svc, m, c := setupFormServiceMocks(t)

	m.question.EXPECT().FindByID("q1").Return(form.Question{ID: "q1", FormID: "f1"}, nil)
	m.form.EXPECT().FindOwned("f1", "admin-1").Return(form.Form{ID: "f1"}, nil)
	m.question.EXPECT().Delete("q1").Return(nil)

	require.NoError(t, svc.DeleteQuestion(c, "admin-1", "q1"))
	assert.Equal(t, []auditCall{{"delete", "question", "q1"}}, *m.audits)
}

func TestDeleteQuestion_Missing(t *testing.T) {
	_, svc, m, c := setupFormServiceMocks(t)
	m.question.EXPECT().FindByID("q1").Return(form.Question{}, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.DeleteQuestion(c, "admin-1", "q1"), ErrQuestionNotFound)
}
