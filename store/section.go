package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cironunes/funretro-api/models"
)

func (s *Store) CreateSection(name string, boardID uint) (*models.Section, error) {
	var board models.Board
	if err := s.db.First(&board, boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	section := &models.Section{Name: name, BoardID: board.ID}
	if err := s.db.Create(section).Error; err != nil {
		return nil, err
	}
	return section, nil
}

// SectionsForBoard returns the sections whose BoardID matches, each
// with its cards. The board itself is not checked for existence:
// sections orphaned by a board delete are still returned.
func (s *Store) SectionsForBoard(boardID uint) ([]models.Section, error) {
	var sections []models.Section
	err := s.db.
		Where("board_id = ?", boardID).
		Preload("Cards").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (s *Store) UpdateSection(id uint, name string) (*models.Section, error) {
	var section models.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&section).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &section, nil
}

// DeleteSection removes the section record only; its cards keep their
// SectionID.
func (s *Store) DeleteSection(id uint) error {
	var section models.Section
	if err := s.db.First(&section, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&section).Error
}
