package handlers

import (
	"log"
	"net/http"

	"github.com/cironunes/funretro-api/middleware"
)

// GET /api/cards/{cardID}/comments
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	cardID, err := pathID(r, "cardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	comments, err := h.Store.CommentsForCard(cardID)
	if err != nil {
		log.Printf("ListComments: Failed to fetch comments for cardID=%d: %v", cardID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// POST /api/cards/{cardID}/comments
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

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

	if _, err := h.Store.CreateComment(cardID, user.ID, req.Text); err != nil {
		log.Printf("CreateComment: Failed to comment on cardID=%d by userID=%d: %v", cardID, user.ID, err)
		storeError(w, err, "Card")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// PUT /api/comments/{commentID}
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentID")
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

	if err := h.Store.UpdateComment(commentID, req.Text); err != nil {
		log.Printf("UpdateComment: Failed to update commentID=%d: %v", commentID, err)
		storeError(w, err, "Comment")
		return
	}
	writeSuccess(w)
}

// DELETE /api/comments/{commentID}
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteComment(commentID); err != nil {
		log.Printf("DeleteComment: Failed to delete commentID=%d: %v", commentID, err)
		storeError(w, err, "Comment")
		return
	}
	writeSuccess(w)
}
