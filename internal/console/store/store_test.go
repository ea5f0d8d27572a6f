package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lib/pq"
	"github.com/linskybing/form-console/internal/domain/form"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	forms     []form.Form
	questions []form.Question
	err       error
	calls     []string

	lastQuestionUpdate form.UpdateQuestionDTO
}

func (f *fakeBackend) ListForms(context.Context) ([]form.Form, error) {
	f.calls = append(f.calls, "ListForms")
	return f.forms, f.err
}

func (f *fakeBackend) GetForm(_ context.Context, id string) (form.Form, error) {
	f.calls = append(f.calls, "GetForm")
	if f.err != nil {
		return form.Form{}, f.err
	}
	return form.Form{ID: id, Title: "Fetched"}, nil
}

func (f *fakeBackend) CreateForm(_ context.Context, in form.CreateFormDTO) (form.Form, error) {
	f.calls = append(f.calls, "CreateForm")
	if f.err != nil {
		return form.Form{}, f.err
	}
	return form.Form{ID: "new", Title: in.Title, Description: in.Description}, nil
}

func (f *fakeBackend) UpdateForm(_ context.Context, id string, in form.UpdateFormDTO) (form.Form, error) {
	f.calls = append(f.calls, "UpdateForm")
	if f.err != nil {
		return form.Form{}, f.err
	}
	out := form.Form{ID: id, Title: "unchanged", Description: in.Description}
	if in.Title != nil {
		out.Title = *in.Title
	}
	return out, nil
}

func (f *fakeBackend) DeleteForm(context.Context, string) error {
	f.calls = append(f.calls, "DeleteForm")
	return f.err
}

func (f *fakeBackend) ListQuestions(context.Context, string) ([]form.Question, error) {
	f.calls = append(f.calls, "ListQuestions")
	return f.questions, f.err
}

func (f *fakeBackend) AddQuestion(_ context.Context, formID string, in form.CreateQuestionDTO) (form.Question, error) {
	f.calls = append(f.calls, "AddQuestion")
	if f.err != nil {
		return form.Question{}, f.err
	}
	return form.Question{ID: "q-new", FormID: formID, Title: in.Title, Type: in.Type, Options: form.NormalizeOptions(in.Options)}, nil
}

func (f *fakeBackend) UpdateQuestion(_ context.Context, id string, in form.UpdateQuestionDTO) (form.Question, error) {
	f.calls = append(f.calls, "UpdateQuestion")
	f.lastQuestionUpdate = in
	if f.err != nil {
		return form.Question{}, f.err
	}
	return form.Question{ID: id, Title: in.Title, Type: in.Type}, nil
}

func (f *fakeBackend) DeleteQuestion(context.Context, string) error {
	f.calls = append(f.calls, "DeleteQuestion")
	return f.err
}

func ptr(s string) *string { return &s }

func loadedForms(t *testing.T, b *fakeBackend) *FormsStore {
	t.Helper()
	s := NewFormsStore(b)
	require.NoError(t, s.Load(context.Background()))
	b.calls = nil
	return s
}

func TestFormsStore_CreateWithoutTitleSkipsBackend(t *testing.T) {
	for _, title := range []string{"", "   "} {
		b := &fakeBackend{}
		s := NewFormsStore(b)

		_, err := s.Create(context.Background(), form.CreateFormDTO{Title: title})
		assert.ErrorIs(t, err, ErrFormTitleRequired)
		assert.Empty(t, b.calls)
		assert.Equal(t, "form title is required", s.Err())
		assert.Empty(t, s.Forms())
	}
}

func TestFormsStore_CreateRejectsUntitledDraftQuestion(t *testing.T) {
	b := &fakeBackend{}
	s := NewFormsStore(b)

	_, err := s.Create(context.Background(), form.CreateFormDTO{
		Title:     "Survey",
		Questions: []form.CreateQuestionDTO{{Title: " "}},
	})
	assert.ErrorIs(t, err, ErrQuestionTitleRequired)
	assert.Empty(t, b.calls)
}

func TestFormsStore_CreateAppends(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1", Title: "A"}}}
	s := loadedForms(t, b)

	_, err := s.Create(context.Background(), form.CreateFormDTO{Title: "B"})
	require.NoError(t, err)

	want := []form.Form{{ID: "1", Title: "A"}, {ID: "new", Title: "B"}}
	if diff := cmp.Diff(want, s.Forms()); diff != "" {
		t.Errorf("mirror mismatch (-want +got):\n%s", diff)
	}
}

func TestFormsStore_UpdatePatchesInPlace(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}, {ID: "3", Title: "C"}}}
	s := loadedForms(t, b)

	_, err := s.Update(context.Background(), "2", form.UpdateFormDTO{Title: ptr("B2"), Description: ptr("d")})
	require.NoError(t, err)

	want := []form.Form{{ID: "1", Title: "A"}, {ID: "2", Title: "B2", Description: ptr("d")}, {ID: "3", Title: "C"}}
	if diff := cmp.Diff(want, s.Forms()); diff != "" {
		t.Errorf("mirror mismatch (-want +got):\n%s", diff)
	}

	_, err = s.Update(context.Background(), "2", form.UpdateFormDTO{Title: ptr("")})
	assert.ErrorIs(t, err, ErrFormTitleRequired)
	assert.Equal(t, []string{"UpdateForm"}, b.calls)
}

func TestFormsStore_DeleteScenario(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}}}
	s := loadedForms(t, b)

	require.NoError(t, s.Delete(context.Background(), "1", true))

	want := []form.Form{{ID: "2", Title: "B"}}
	if diff := cmp.Diff(want, s.Forms()); diff != "" {
		t.Errorf("mirror mismatch (-want +got):\n%s", diff)
	}
}

func TestFormsStore_DeleteKeepsOrder(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}}}
	s := loadedForms(t, b)

	require.NoError(t, s.Delete(context.Background(), "2", true))
	assert.Equal(t, []form.Form{{ID: "1"}, {ID: "3"}, {ID: "4"}}, s.Forms())
}

func TestFormsStore_DeleteNeedsConfirmation(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1"}}}
	s := loadedForms(t, b)

	assert.ErrorIs(t, s.Delete(context.Background(), "1", false), ErrNotConfirmed)
	assert.Empty(t, b.calls)
	assert.Len(t, s.Forms(), 1)
}

func TestFormsStore_FailureLeavesMirror(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1", Title: "A"}}}
	s := loadedForms(t, b)
	before := s.Forms()

	b.err = errors.New("network unreachable")
	_, err := s.Create(context.Background(), form.CreateFormDTO{Title: "B"})
	require.Error(t, err)
	require.Error(t, s.Delete(context.Background(), "1", true))
	_, err = s.Update(context.Background(), "1", form.UpdateFormDTO{Title: ptr("Z")})
	require.Error(t, err)
	require.Error(t, s.Load(context.Background()))

	assert.Equal(t, "network unreachable", s.Err())
	if diff := cmp.Diff(before, s.Forms()); diff != "" {
		t.Errorf("mirror changed after failures (-want +got):\n%s", diff)
	}

	s.ClearErr()
	assert.Empty(t, s.Err())
}

func TestFormsStore_FormsReturnsCopy(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1", Title: "A"}}}
	s := loadedForms(t, b)

	got := s.Forms()
	got[0].Title = "mutated"
	f, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "A", f.Title)
}

func selectedQuestions(t *testing.T, b *fakeBackend) *QuestionsStore {
	t.Helper()
	s := NewQuestionsStore(b)
	require.NoError(t, s.Select(context.Background(), "f1"))
	b.calls = nil
	return s
}

func TestQuestionsStore_AddScenario(t *testing.T) {
	b := &fakeBackend{}
	s := selectedQuestions(t, b)

	_, err := s.Add(context.Background(), form.CreateQuestionDTO{Title: "Q1", Type: form.QuestionShortAnswer})
	require.NoError(t, err)

	want := []form.Question{{Title: "Q1", Type: form.QuestionShortAnswer, Options: nil}}
	opts := cmpopts.IgnoreFields(form.Question{}, "ID", "FormID", "CreatedAt")
	if diff := cmp.Diff(want, s.Questions(), opts); diff != "" {
		t.Errorf("mirror mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, s.Questions()[0].Options)
}

func TestQuestionsStore_AddWithoutTitleSkipsBackend(t *testing.T) {
	b := &fakeBackend{}
	s := selectedQuestions(t, b)

	_, err := s.Add(context.Background(), form.CreateQuestionDTO{Type: form.QuestionTrueFalse})
	assert.ErrorIs(t, err, ErrQuestionTitleRequired)
	assert.Empty(t, b.calls)
	assert.Equal(t, "question title is required", s.Err())
}

func TestQuestionsStore_AddNeedsSelection(t *testing.T) {
	b := &fakeBackend{}
	s := NewQuestionsStore(b)

	_, err := s.Add(context.Background(), form.CreateQuestionDTO{Title: "Q1"})
	assert.ErrorIs(t, err, ErrNoFormSelected)
	assert.Empty(t, b.calls)
}

func TestQuestionsStore_UpdateReplacesOnlyTarget(t *testing.T) {
	b := &fakeBackend{questions: []form.Question{
		{ID: "q1", Title: "Colour", Type: form.QuestionMultipleChoice, Options: pq.StringArray{"red", "blue"}},
		{ID: "q2", Title: "Name", Type: form.QuestionShortAnswer},
	}}
	s := selectedQuestions(t, b)

	submitted := form.Question{ID: "q1", Title: "Colour?", Type: form.QuestionShortAnswer, Options: pq.StringArray{"red", "blue"}}
	require.NoError(t, s.Update(context.Background(), submitted))

	want := []form.Question{
		submitted,
		{ID: "q2", Title: "Name", Type: form.QuestionShortAnswer},
	}
	if diff := cmp.Diff(want, s.Questions()); diff != "" {
		t.Errorf("mirror mismatch (-want +got):\n%s", diff)
	}
	// Switching away from a choice type still submits the stored options.
	assert.Equal(t, []string{"red", "blue"}, b.lastQuestionUpdate.Options)
	assert.Nil(t, s.Questions()[0].VisibleOptions())
}

func TestQuestionsStore_UpdateWithoutTitleSkipsBackend(t *testing.T) {
	b := &fakeBackend{questions: []form.Question{{ID: "q1", Title: "Name"}}}
	s := selectedQuestions(t, b)

	assert.ErrorIs(t, s.Update(context.Background(), form.Question{ID: "q1"}), ErrQuestionTitleRequired)
	assert.Empty(t, b.calls)
	assert.Equal(t, "Name", s.Questions()[0].Title)
}

func TestQuestionsStore_Delete(t *testing.T) {
	b := &fakeBackend{questions: []form.Question{{ID: "q1"}, {ID: "q2"}, {ID: "q3"}}}
	s := selectedQuestions(t, b)

	assert.ErrorIs(t, s.Delete(context.Background(), "q2", false), ErrNotConfirmed)
	assert.Empty(t, b.calls)

	require.NoError(t, s.Delete(context.Background(), "q2", true))
	assert.Equal(t, []form.Question{{ID: "q1"}, {ID: "q3"}}, s.Questions())

	b.err = errors.New("permission denied")
	require.Error(t, s.Delete(context.Background(), "q1", true))
	assert.Equal(t, []form.Question{{ID: "q1"}, {ID: "q3"}}, s.Questions())
	assert.Equal(t, "permission denied", s.Err())
}

func TestQuestionsStore_SelectEmptyClears(t *testing.T) {
	b := &fakeBackend{questions: []form.Question{{ID: "q1"}}}
	s := selectedQuestions(t, b)
	require.Len(t, s.Questions(), 1)

	require.NoError(t, s.Select(context.Background(), ""))
	assert.Empty(t, s.Questions())
	assert.Empty(t, s.FormID())
	assert.Empty(t, b.calls)
}

func TestQuestionsStore_FailureLeavesMirror(t *testing.T) {
	b := &fakeBackend{questions: []form.Question{
		{ID: "q1", Title: "Colour", Type: form.QuestionMultipleChoice, Options: pq.StringArray{"red"}},
		{ID: "q2", Title: "Name", Type: form.QuestionShortAnswer},
	}}
	s := selectedQuestions(t, b)
	before := s.Questions()

	b.err = errors.New("network unreachable")
	_, err := s.Add(context.Background(), form.CreateQuestionDTO{Title: "Q3"})
	require.Error(t, err)
	require.Error(t, s.Update(context.Background(), form.Question{ID: "q2", Title: "Full name", Type: form.QuestionShortAnswer}))
	require.Error(t, s.Load(context.Background()))

	assert.Equal(t, []string{"AddQuestion", "UpdateQuestion", "ListQuestions"}, b.calls)
	assert.Equal(t, "network unreachable", s.Err())
	if diff := cmp.Diff(before, s.Questions()); diff != "" {
		t.Errorf("mirror changed after failures (-want +got):\n%s", diff)
	}
}

// switchingBackend moves the store to another form while a list request for
// the previous one is in flight.
type switchingBackend struct {
	*fakeBackend
	store *QuestionsStore
	to    string
}

func (b *switchingBackend) ListQuestions(ctx context.Context, formID string) ([]form.Question, error) {
	b.store.mu.Lock()
	b.store.formID = b.to
	b.store.mu.Unlock()
	return b.fakeBackend.ListQuestions(ctx, formID)
}

func TestQuestionsStore_LoadIgnoresStaleSelection(t *testing.T) {
	b := &switchingBackend{
		fakeBackend: &fakeBackend{questions: []form.Question{{ID: "q1", FormID: "f1", Title: "Old"}}},
		to:          "f2",
	}
	s := NewQuestionsStore(b)
	b.store = s

	require.NoError(t, s.Select(context.Background(), "f1"))

	assert.Equal(t, "f2", s.FormID())
	assert.Empty(t, s.Questions(), "response for f1 must not land on f2")
	assert.Empty(t, s.Err())
}

func TestFormsStore_FetchMergesIntoMirror(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1", Title: "A"}}}
	s := loadedForms(t, b)

	got, err := s.Fetch(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Fetched", got.Title)
	assert.Equal(t, []form.Form{{ID: "1", Title: "A"}, {ID: "2", Title: "Fetched"}}, s.Forms())

	_, err = s.Fetch(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, []form.Form{{ID: "1", Title: "Fetched"}, {ID: "2", Title: "Fetched"}}, s.Forms())
	assert.Equal(t, []string{"GetForm", "GetForm"}, b.calls)
}

func TestFormsStore_FetchFailureLeavesMirror(t *testing.T) {
	b := &fakeBackend{forms: []form.Form{{ID: "1", Title: "A"}}}
	s := loadedForms(t, b)

	b.err = errors.New("form not found")
	_, err := s.Fetch(context.Background(), "2")
	require.EqualError(t, err, "form not found")
	assert.Equal(t, []form.Form{{ID: "1", Title: "A"}}, s.Forms())
	assert.Empty(t, s.Err())
}
