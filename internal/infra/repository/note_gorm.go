package repository

import (
	"app/internal/domain/model"
	domainrepo "app/internal/repository"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type noteGormRepository struct {
	db *gorm.DB
}

// DI
func NewNoteGormRepository(db *gorm.DB) domainrepo.NoteRepository {
	return &noteGormRepository{db: db}
}

// Create はノートを新規作成
func (r *noteGormRepository) Create(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return err
	}
	return nil
}

// IDと所有者で1件取得。所有者が違う場合もErrNoteNotFound（存在を教えない）。
func (r *noteGormRepository) FindByIDAndOwner(ctx context.Context, noteID int64, owner string) (*model.Note, error) {
	var n model.Note

	err := r.db.WithContext(ctx).
		Where("id = ? AND username = ?", noteID, owner).
		First(&n).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainrepo.ErrNoteNotFound
		}
		return nil, err
	}

	return &n, nil
}

// 有効なノートを作成日時の昇順で取得
func (r *noteGormRepository) ListActiveByOwner(ctx context.Context, owner string, now time.Time, offset int, limit int) ([]model.Note, error) {
	var notes []model.Note

	err := r.db.WithContext(ctx).
		Where("username = ?", owner).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// 有効なノートを作成日時の降順で最新limit件取得
func (r *noteGormRepository) ListLatestActiveByOwner(ctx context.Context, owner string, now time.Time, limit int) ([]model.Note, error) {
	var notes []model.Note

	err := r.db.WithContext(ctx).
		Where("username = ?", owner).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at DESC").
		Limit(limit).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// ノートを更新。
func (r *noteGormRepository) Update(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return err
	}
	return nil
}

// ノートを削除。
func (r *noteGormRepository) Delete(ctx context.Context, note *model.Note) error {
	if err := r.db.WithContext(ctx).Delete(note).Error; err != nil {
		return err
	}
	return nil
}
