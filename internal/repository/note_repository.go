package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
	"time"
)

// ノートが見つかりませんを統一
var ErrNoteNotFound = errors.New("note not found")

// ノートの保存・取得を約束
type NoteRepository interface {
	//新規ノート作成
	Create(ctx context.Context, note *model.Note) error
	// IDと所有者でノートを1件取得する。所有者違いは見つからない扱い。
	FindByIDAndOwner(ctx context.Context, noteID int64, owner string) (*model.Note, error)
	// 有効なノートを作成日時の昇順で取得（offset/limitでページング）
	ListActiveByOwner(ctx context.Context, owner string, now time.Time, offset int, limit int) ([]model.Note, error)
	// 有効なノートを作成日時の降順で取得（最新limit件）
	ListLatestActiveByOwner(ctx context.Context, owner string, now time.Time, limit int) ([]model.Note, error)
	// ノート更新
	Update(ctx context.Context, note *model.Note) error
	// ノート削除
	Delete(ctx context.Context, note *model.Note) error
}
