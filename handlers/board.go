package handlers

import (
	"log"
	"net/http"

	"github.com/cironunes/funretro-api/middleware"
)

// GET /api/boards
func (h *Handler) ListBoards(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	boards, err := h.Store.BoardsForUser(user.ID)
	if err != nil {
		log.Printf("ListBoards: Failed to fetch boards for userID=%d: %v", user.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

// GET /api/boards/{boardID}
func (h *Handler) GetBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	board, err := h.Store.BoardByID(boardID)
	if err != nil {
		log.Printf("GetBoard: Board not found for id=%d: %v", boardID, err)
		storeError(w, err, "Board")
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// POST /api/boards
func (h *Handler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.UserFrom(r)

	var req struct {
		Name     string
		MaxVotes int
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	board, err := h.Store.CreateBoard(req.Name, req.MaxVotes, user.ID)
	if err != nil {
		log.Printf("CreateBoard: Failed to create board for userID=%d: %v", user.ID, err)
		storeError(w, err, "User")
		return
	}

	log.Printf("CreateBoard: Created board id=%d for userID=%d", board.ID, user.ID)
	writeJSON(w, http.StatusCreated, board)
}

// PUT /api/boards/{boardID}
//
// Absent fields keep their current value; a present zero value
// overwrites.
func (h *Handler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Name     *string
		MaxVotes *int
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Store.UpdateBoard(boardID, req.Name, req.MaxVotes); err != nil {
		log.Printf("UpdateBoard: Failed to update boardID=%d: %v", boardID, err)
		storeError(w, err, "Board")
		return
	}
	writeSuccess(w)
}

// DELETE /api/boards/{boardID}
func (h *Handler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteBoard(boardID); err != nil {
		log.Printf("DeleteBoard: Failed to delete boardID=%d: %v", boardID, err)
		storeError(w, err, "Board")
		return
	}

	log.Printf("DeleteBoard: Deleted boardID=%d", boardID)
	writeSuccess(w)
}

// POST /api/boards/{boardID}/members/{userID}
func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.AddUserToBoard(userID, boardID); err != nil {
		log.Printf("AddMember: Failed to add userID=%d to boardID=%d: %v", userID, boardID, err)
		storeError(w, err, "Board or user")
		return
	}
	writeSuccess(w)
}

// DELETE /api/boards/{boardID}/members/{userID}
func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	userID, err := pathID(r, "userID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.RemoveUserFromBoard(userID, boardID); err != nil {
		log.Printf("RemoveMember: Failed to remove userID=%d from boardID=%d: %v", userID, boardID, err)
		storeError(w, err, "Board or user")
		return
	}
	writeSuccess(w)
}
