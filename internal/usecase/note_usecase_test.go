package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mock: NoteRepository
// =====================

type MockNoteRepository struct {
	mock.Mock
}

func (m *MockNoteRepository) Create(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) FindByIDAndOwner(ctx context.Context, noteID int64, owner string) (*model.Note, error) {
	args := m.Called(ctx, noteID, owner)
	n, _ := args.Get(0).(*model.Note)
	return n, args.Error(1)
}

func (m *MockNoteRepository) ListActiveByOwner(ctx context.Context, owner string, now time.Time, offset int, limit int) ([]model.Note, error) {
	args := m.Called(ctx, owner, now, offset, limit)
	notes, _ := args.Get(0).([]model.Note)
	return notes, args.Error(1)
}

func (m *MockNoteRepository) ListLatestActiveByOwner(ctx context.Context, owner string, now time.Time, limit int) ([]model.Note, error) {
	args := m.Called(ctx, owner, now, limit)
	notes, _ := args.Get(0).([]model.Note)
	return notes, args.Error(1)
}

func (m *MockNoteRepository) Update(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func (m *MockNoteRepository) Delete(ctx context.Context, note *model.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}

func expiredNote(id int64, owner string) *model.Note {
	past := time.Now().Add(-time.Second)
	return &model.Note{
		ID:        id,
		Username:  owner,
		Title:     "t",
		Content:   "c",
		ExpiresAt: &past,
	}
}

func TestCreateNoteSetsOwner(t *testing.T) {
	notes := new(MockNoteRepository)
	notes.On("Create", mock.Anything, mock.MatchedBy(func(n *model.Note) bool {
		return n.Username == "alice"
	})).Return(nil)

	uc := usecase.NewNoteUsecase(notes, testLogger())

	out, err := uc.Create(context.Background(), "alice", usecase.NoteInput{
		Title:   "shopping",
		Content: "milk",
	})

	assert.NoError(t, err)
	assert.Equal(t, "shopping", out.Title)
	notes.AssertExpectations(t)
}

func TestCreateNoteValidation(t *testing.T) {
	uc := usecase.NewNoteUsecase(new(MockNoteRepository), testLogger())
	past := time.Now().Add(-time.Minute)

	cases := []usecase.NoteInput{
		{Title: "", Content: "c"},
		{Title: strings.Repeat("x", 256), Content: "c"},
		{Title: "t", Content: ""},
		{Title: "t", Content: strings.Repeat("x", 10001)},
		{Title: "t", Content: "c", ExpiresAt: &past},
	}

	for _, in := range cases {
		_, err := uc.Create(context.Background(), "alice", in)

		var validationErr *usecase.ValidationError
		assert.ErrorAs(t, err, &validationErr, "input %+v", in)
	}
}

// 所有者違いと不存在は同じNotFound。Forbiddenは返さない。
func TestGetNoteNotOwnedLooksLikeMissing(t *testing.T) {
	notes := new(MockNoteRepository)
	notes.On("FindByIDAndOwner", mock.Anything, int64(7), "alice").Return(nil, repository.ErrNoteNotFound)

	uc := usecase.NewNoteUsecase(notes, testLogger())

	_, err := uc.Get(context.Background(), "alice", 7)

	var notFound *usecase.NoteNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Note not found with ID=7.", err.Error())
}

func TestExpiredNoteReadAndUpdateFailDeleteSucceeds(t *testing.T) {
	note := expiredNote(5, "alice")

	notes := new(MockNoteRepository)
	notes.On("FindByIDAndOwner", mock.Anything, int64(5), "alice").Return(note, nil)
	notes.On("Delete", mock.Anything, note).Return(nil)

	uc := usecase.NewNoteUsecase(notes, testLogger())

	//read
	_, err := uc.Get(context.Background(), "alice", 5)
	var expiredErr *usecase.NoteExpiredError
	assert.ErrorAs(t, err, &expiredErr)
	assert.Equal(t, "Note '5' has already expired.", err.Error())

	//update
	_, err = uc.Update(context.Background(), "alice", 5, usecase.NoteInput{Title: "t", Content: "c"})
	assert.ErrorAs(t, err, &expiredErr)

	//deleteは期限切れでも通る
	err = uc.Delete(context.Background(), "alice", 5)
	assert.NoError(t, err)
	notes.AssertCalled(t, "Delete", mock.Anything, note)
}

func TestUpdateNote(t *testing.T) {
	note := &model.Note{ID: 3, Username: "alice", Title: "old", Content: "old"}

	notes := new(MockNoteRepository)
	notes.On("FindByIDAndOwner", mock.Anything, int64(3), "alice").Return(note, nil)
	notes.On("Update", mock.Anything, mock.MatchedBy(func(n *model.Note) bool {
		return n.Title == "new" && n.Content == "body" && n.Username == "alice"
	})).Return(nil)

	uc := usecase.NewNoteUsecase(notes, testLogger())

	out, err := uc.Update(context.Background(), "alice", 3, usecase.NoteInput{Title: "new", Content: "body"})
	assert.NoError(t, err)
	assert.Equal(t, "new", out.Title)
	notes.AssertExpectations(t)
}

func TestDeleteMissingNote(t *testing.T) {
	notes := new(MockNoteRepository)
	notes.On("FindByIDAndOwner", mock.Anything, int64(9), "alice").Return(nil, repository.ErrNoteNotFound)

	uc := usecase.NewNoteUsecase(notes, testLogger())

	err := uc.Delete(context.Background(), "alice", 9)

	var notFound *usecase.NoteNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestListActiveDefaultsAndPaging(t *testing.T) {
	notes := new(MockNoteRepository)
	//page/sizeが未指定ならoffset=0, limit=20
	notes.On("ListActiveByOwner", mock.Anything, "alice", mock.Anything, 0, 20).Return([]model.Note{}, nil)
	//page=2, size=10ならoffset=20
	notes.On("ListActiveByOwner", mock.Anything, "alice", mock.Anything, 20, 10).Return([]model.Note{}, nil)

	uc := usecase.NewNoteUsecase(notes, testLogger())

	_, err := uc.ListActive(context.Background(), "alice", 0, 0)
	assert.NoError(t, err)

	_, err = uc.ListActive(context.Background(), "alice", 2, 10)
	assert.NoError(t, err)

	notes.AssertExpectations(t)
}

func TestListLatestDefaultLimit(t *testing.T) {
	notes := new(MockNoteRepository)
	notes.On("ListLatestActiveByOwner", mock.Anything, "alice", mock.Anything, 1000).Return([]model.Note{
		{ID: 2, Username: "alice", Title: "b", Content: "c"},
		{ID: 1, Username: "alice", Title: "a", Content: "c"},
	}, nil)

	uc := usecase.NewNoteUsecase(notes, testLogger())

	out, err := uc.ListLatest(context.Background(), "alice", 0)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
}
