package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// ノート一覧のデフォルト（元仕様のまま）
const (
	defaultNotePageSize    = 20
	defaultLatestNoteLimit = 1000
)

// ノート作成・更新の入力
type NoteInput struct {
	Title     string
	Content   string
	ExpiresAt *time.Time
}

// APIに返すノート
type NoteDTO struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// NoteUsecaseは認証済みユーザーのノートCRUD。
// 呼び出し側が解決したowner（username）を毎回明示的に受け取る。
type NoteUsecase struct {
	notes  repository.NoteRepository
	clock  func() time.Time
	logger *slog.Logger
}

// DI
func NewNoteUsecase(notes repository.NoteRepository, logger *slog.Logger) *NoteUsecase {
	return &NoteUsecase{
		notes:  notes,
		clock:  time.Now,
		logger: logger,
	}
}

// ノートを作成。所有者はリクエストに関係なくownerで固定する。
func (u *NoteUsecase) Create(ctx context.Context, owner string, in NoteInput) (*NoteDTO, error) {
	if err := validateNoteInput(in, u.clock()); err != nil {
		return nil, err
	}

	note := &model.Note{
		Username:  owner,
		Title:     in.Title,
		Content:   in.Content,
		ExpiresAt: in.ExpiresAt,
	}

	if err := u.notes.Create(ctx, note); err != nil {
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "created note", "note_id", note.ID, "username", owner)
	return toNoteDTO(note), nil
}

// IDで1件取得。期限切れは読めない。
func (u *NoteUsecase) Get(ctx context.Context, owner string, noteID int64) (*NoteDTO, error) {
	note, err := u.activeNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	return toNoteDTO(note), nil
}

// 有効なノートを作成日時の昇順でページング取得
func (u *NoteUsecase) ListActive(ctx context.Context, owner string, page int, size int) ([]NoteDTO, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = defaultNotePageSize
	}

	notes, err := u.notes.ListActiveByOwner(ctx, owner, u.clock(), page*size, size)
	if err != nil {
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "listed active notes", "username", owner, "count", len(notes))
	return toNoteDTOs(notes), nil
}

// 最新の有効ノートを降順でlimit件取得
func (u *NoteUsecase) ListLatest(ctx context.Context, owner string, limit int) ([]NoteDTO, error) {
	if limit <= 0 {
		limit = defaultLatestNoteLimit
	}

	notes, err := u.notes.ListLatestActiveByOwner(ctx, owner, u.clock(), limit)
	if err != nil {
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "listed latest notes", "username", owner, "count", len(notes))
	return toNoteDTOs(notes), nil
}

// ノート更新。期限切れは更新できない。
func (u *NoteUsecase) Update(ctx context.Context, owner string, noteID int64, in NoteInput) (*NoteDTO, error) {
	if err := validateNoteInput(in, u.clock()); err != nil {
		return nil, err
	}

	note, err := u.activeNote(ctx, owner, noteID)
	if err != nil {
		return nil, err
	}

	note.Title = in.Title
	note.Content = in.Content
	note.ExpiresAt = in.ExpiresAt

	if err := u.notes.Update(ctx, note); err != nil {
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "updated note", "note_id", note.ID, "username", owner)
	return toNoteDTO(note), nil
}

// ノート削除。期限切れチェックはしない
// （期限が過ぎて見えなくなったノートも所有者なら消せる）。
func (u *NoteUsecase) Delete(ctx context.Context, owner string, noteID int64) error {
	note, err := u.notes.FindByIDAndOwner(ctx, noteID, owner)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return &NoteNotFoundError{NoteID: noteID}
		}
		return ErrInternal
	}

	if err := u.notes.Delete(ctx, note); err != nil {
		return ErrInternal
	}

	u.logger.InfoContext(ctx, "deleted note", "note_id", noteID, "username", owner)
	return nil
}

// 所有者のノートを取得して、期限切れならエラー。
// 所有者違いはNotFoundのまま（他人のノートの存在を教えない）。
func (u *NoteUsecase) activeNote(ctx context.Context, owner string, noteID int64) (*model.Note, error) {
	note, err := u.notes.FindByIDAndOwner(ctx, noteID, owner)
	if err != nil {
		if errors.Is(err, repository.ErrNoteNotFound) {
			return nil, &NoteNotFoundError{NoteID: noteID}
		}
		return nil, ErrInternal
	}

	if !note.Active(u.clock()) {
		return nil, &NoteExpiredError{NoteID: noteID}
	}

	return note, nil
}

// title/contentの必須・上限とexpiresAtの未来チェック
func validateNoteInput(in NoteInput, now time.Time) error {
	if in.Title == "" {
		return NewValidationError("title: Title is required")
	}
	if len(in.Title) > 255 {
		return NewValidationError("title: Title must not exceed 255 characters")
	}
	if in.Content == "" {
		return NewValidationError("content: Content is required")
	}
	if len(in.Content) > 10000 {
		return NewValidationError("content: Content must not exceed 10000 characters")
	}
	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		return NewValidationError("expiresAt: Expiry must be in the future")
	}
	return nil
}

func toNoteDTO(n *model.Note) *NoteDTO {
	return &NoteDTO{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
		ExpiresAt: n.ExpiresAt,
	}
}

func toNoteDTOs(notes []model.Note) []NoteDTO {
	out := make([]NoteDTO, 0, len(notes))
	for i := range notes {
		out = append(out, *toNoteDTO(&notes[i]))
	}
	return out
}
