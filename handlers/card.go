package handlers

import (
	"log"
	"net/http"
)

// GET /api/sections/{sectionID}/cards
func (h *Handler) ListCards(w http.ResponseWriter, r *http.Request) {
	sectionID, err := pathID(r, "sectionID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cards, err := h.Store.CardsForSection(sectionID)
	if err != nil {
		log.Printf("ListCards: Failed to fetch cards for sectionID=%d: %v", sectionID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// POST /api/sections/{sectionID}/cards
func (h *Handler) CreateCard(w http.ResponseWriter, r *http.Request) {
	sectionID, err := pathID(r, "sectionID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Text string
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	card, err := h.Store.CreateCard(req.Text, sectionID)
	if err != nil {
		log.Printf("CreateCard: Failed to create card for sectionID=%d: %v", sectionID, err)
		storeError(w, err, "Section")
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// PUT /api/cards/{cardID}
func (h *Handler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Text string
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	card, err := h.Store.UpdateCard(cardID, req.Text)
	if err != nil {
		log.Printf("UpdateCard: Failed to update cardID=%d: %v", cardID, err)
		storeError(w, err, "Card")
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// DELETE /api/cards/{cardID}
func (h *Handler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteCard(cardID); err != nil {
		log.Printf("DeleteCard: Failed to delete cardID=%d: %v", cardID, err)
		storeError(w, err, "Card")
		return
	}
	writeSuccess(w)
}

// PUT /api/cards/{cardID}/section
//
// A SectionID in the body attaches the card to that section; a null or
// absent SectionID detaches it.
func (h *Handler) MoveCard(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		SectionID *uint
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SectionID != nil {
		err = h.Store.AttachCard(cardID, *req.SectionID)
	} else {
		err = h.Store.DetachCard(cardID)
	}
	if err != nil {
		log.Printf("MoveCard: Failed to move cardID=%d: %v", cardID, err)
		storeError(w, err, "Card or section")
		return
	}
	writeSuccess(w)
}

// POST /api/cards/{cardID}/votes/{userID}
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.Vote(cardID, userID); err != nil {
		log.Printf("Vote: Failed to vote cardID=%d userID=%d: %v", cardID, userID, err)
		storeError(w, err, "Card or user")
		return
	}
	writeSuccess(w)
}

// DELETE /api/cards/{cardID}/votes/{userID}
func (h *Handler) Unvote(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.Unvote(cardID, userID); err != nil {
		log.Printf("Unvote: Failed to unvote cardID=%d userID=%d: %v", cardID, userID, err)
		storeError(w, err, "Card or user")
		return
	}
	writeSuccess(w)
}
