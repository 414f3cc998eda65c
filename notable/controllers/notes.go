package controllers

import (
	"context"

	"notable/notable/sources/psql/dao"
	"notable/notable/sources/psql/models"

	"github.com/google/uuid"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

type NotesController struct {
	dao *dao.NoteDAO
}

func NewNotesController(dao *dao.NoteDAO) *NotesController {
	return &NotesController{dao: dao}
}

func (c *NotesController) CreateNote(ctx context.Context, title, content, category string, published bool) (*models.Note, error) {
	note := &models.Note{
		Title:     title,
		Content:   content,
		Category:  category,
		Published: published,
	}
	err := c.dao.CreateNote(ctx, note)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (c *NotesController) GetNoteByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	return c.dao.GetNoteByID(ctx, id)
}

// ListNotes returns notes newest first. page is clamped to a minimum of 1
// and limit to [1, maxPageLimit] so the computed offset can never underflow.
func (c *NotesController) ListNotes(ctx context.Context, page, limit int) ([]models.Note, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	offset := (page - 1) * limit
	return c.dao.ListNotes(ctx, limit, offset)
}

// UpdateNote applies the given columns to the note and returns its fresh
// state. Returns (nil, nil) when no note with that id exists, including the
// case where a concurrent delete removed it before the write landed.
func (c *NotesController) UpdateNote(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Note, error) {
	if len(updates) > 0 {
		rows, err := c.dao.UpdateNote(ctx, id, updates)
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, nil
		}
	}
	return c.dao.GetNoteByID(ctx, id)
}

// DeleteNote removes the note, reporting whether a row was actually deleted.
func (c *NotesController) DeleteNote(ctx context.Context, id uuid.UUID) (bool, error) {
	rows, err := c.dao.DeleteNote(ctx, id)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}
