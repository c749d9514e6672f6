package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cironunes/funretro-api/models"
)

func (s *Store) CreateComment(cardID, authorID uint, text string) (*models.Comment, error) {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	author, err := s.UserByID(authorID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{Text: text, CardID: card.ID, AuthorID: author.ID}
	if err := s.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CommentsForCard returns the comments on a card, each with its author.
func (s *Store) CommentsForCard(cardID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Where("card_id = ?", cardID).
		Preload("Author").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *Store) UpdateComment(id uint, text string) error {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&comment).Update("text", text).Error
}

func (s *Store) DeleteComment(id uint) error {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&comment).Error
}
