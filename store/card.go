package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/cironunes/funretro-api/models"
)

func (s *Store) CreateCard(text string, sectionID uint) (*models.Card, error) {
	var section models.Section
	if err := s.db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	card := &models.Card{Text: text, SectionID: &section.ID}
	if err := s.db.Create(card).Error; err != nil {
		return nil, err
	}
	return card, nil
}

// CardsForSection returns the cards in a section, each with its vote
// set and comments.
func (s *Store) CardsForSection(sectionID uint) ([]models.Card, error) {
	var cards []models.Card
	err := s.db.
		Where("section_id = ?", sectionID).
		Preload("Votes").
		Preload("Comments").
		Find(&cards).Error
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *Store) UpdateCard(id uint, text string) (*models.Card, error) {
	var card models.Card
	if err := s.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Model(&card).Update("text", text).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *Store) DeleteCard(id uint) error {
	var card models.Card
	if err := s.db.First(&card, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Delete(&card).Error
}

// AttachCard reassigns the card to the given section.
func (s *Store) AttachCard(cardID, sectionID uint) error {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	var section models.Section
	if err := s.db.First(&section, sectionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&card).Update("section_id", section.ID).Error
}

// DetachCard clears the card's section reference. The card survives,
// invisible to any section listing until attached again.
func (s *Store) DetachCard(cardID uint) error {
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&card).Update("section_id", nil).Error
}

// Vote adds the user to the card's vote set. Voting twice leaves a
// single edge. MaxVotes on the board is not consulted.
func (s *Store) Vote(cardID, userID uint) error {
	user, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&card).Association("Votes").Append(user)
}

// Unvote removes the user from the card's vote set; removing an absent
// vote is a no-op.
func (s *Store) Unvote(cardID, userID uint) error {
	user, err := s.UserByID(userID)
	if err != nil {
		return err
	}
	var card models.Card
	if err := s.db.First(&card, cardID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.db.Model(&card).Association("Votes").Delete(user)
}
