package dao

import (
	"context"

	"notable/notable/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteDAO struct {
	DB *gorm.DB
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{DB: db}
}

func (dao *NoteDAO) CreateNote(ctx context.Context, note *models.Note) error {
	return dao.DB.WithContext(ctx).Create(note).Error
}

func (dao *NoteDAO) GetNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	var note models.Note
	err := dao.DB.WithContext(ctx).First(&note, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (dao *NoteDAO) ListNotes(ctx context.Context, limit, offset int) ([]models.Note, error) {
	var notes []models.Note
	err := dao.DB.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

// UpdateNote writes only the given columns in a single statement; columns
// absent from updates keep their stored values. Returns the number of rows
// matched, zero when no note with that id exists.
func (dao *NoteDAO) UpdateNote(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (int64, error) {
	res := dao.DB.WithContext(ctx).Model(&models.Note{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

func (dao *NoteDAO) DeleteNote(ctx context.Context, id uuid.UUID) (int64, error) {
	res := dao.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Note{})
	return res.RowsAffected, res.Error
}
