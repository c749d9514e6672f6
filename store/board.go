package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cironunes/funretro-api/models"
)

// CreateBoard persists a board with the creator as its sole initial
// member. The insert and the membership edge share one transaction.
func (s *Store) CreateBoard(name string, maxVotes int, creatorID uint) (*models.Board, error) {
	creator, err := s.UserByID(creatorID)
	if err != nil {
		return nil, err
	}

	board := &models.Board{Name: name, MaxVotes: maxVotes}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return err
		}
		return tx.Model(board).Association("Users").Append(creator)
	})
	if err != nil {
		return nil, err
	}
	return board, nil
}

// BoardsForUser returns the boards the user is a member of, each with
// its sections but nothing deeper.
func (s *Store) BoardsForUser(userID uint) ([]models.Board, error) {
	var boards []models.Board
	err := s.db.
		Joins("JOIN board_users ON board_users.board_id = boards.id").
		Where("board_users.user_id = ?", userID).
		Preload("Sections").
		Find(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

// BoardByID returns one board with its full subtree: members, sections,
// sections' cards, cards' votes, and cards' comments with their authors.
func (s *Store) BoardByID(id uint) (*models.Board, error) {
	var board models.Board
	err := s.db.
		Preload("Users").
		Preload("Sections.Cards.Votes").
		Preload("Sections.Cards.Comments.Author").
		First(&board, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &board, nil
}

// UpdateBoard overwrites only the provided fields. A nil pointer means
// "keep the current value"; a pointer to a zero value overwrites.
func (s *Store) UpdateBoard(id uint, name *string, maxVotes *int) error {
	var board models.Board
	if err := s.db.First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	updates := map[string]interface{}{}
	if name != nil {
		updates["name"] = *name
	}
	if maxVotes != nil {
		updates["max_votes"] = *maxVotes
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&board).Updates(updates).Error
}

// DeleteBoard removes the board record only. Sections keep their
// BoardID and stay queryable through SectionsForBoard.
func (s *Store) DeleteBoard(id uint) error {
	var board models.Board
	if err := s.db.First(&board, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&board).Error
}

// AddUserToBoard adds a membership edge. Adding an existing member
// leaves a single edge in place.
func (s *Store) AddUserToBoard(userID, boardID uint) error {
	user, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	var board models.Board
	if err := s.db.First(&board, boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&board).Association("Users").Append(user)
}

// RemoveUserFromBoard removes a membership edge; removing an absent
// member is a no-op.
func (s *Store) RemoveUserFromBoard(userID, boardID uint) error {
	user, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	var board models.Board
	if err := s.db.First(&board, boardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&board).Association("Users").Delete(user)
}
