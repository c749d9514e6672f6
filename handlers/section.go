package handlers

import (
	"log"
	"net/http"
)

// GET /api/boards/{boardID}/sections
//
// Returns sections by board id even when the board itself has been
// deleted; orphaned sections stay visible.
func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sections, err := h.Store.SectionsForBoard(boardID)
	if err != nil {
		log.Printf("ListSections: Failed to fetch sections for boardID=%d: %v", boardID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, sections)
}

// POST /api/boards/{boardID}/sections
func (h *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Name string
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	section, err := h.Store.CreateSection(req.Name, boardID)
	if err != nil {
		log.Printf("CreateSection: Failed to create section for boardID=%d: %v", boardID, err)
		storeError(w, err, "Board")
		return
	}

	writeJSON(w, http.StatusCreated, section)
}

// PUT /api/sections/{sectionID}
func (h *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionID, err := pathID(r, "sectionID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Name string
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	section, err := h.Store.UpdateSection(sectionID, req.Name)
	if err != nil {
		log.Printf("UpdateSection: Failed to update sectionID=%d: %v", sectionID, err)
		storeError(w, err, "Section")
		return
	}
	writeJSON(w, http.StatusOK, section)
}

// DELETE /api/sections/{sectionID}
func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	sectionID, err := pathID(r, "sectionID")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Store.DeleteSection(sectionID); err != nil {
		log.Printf("DeleteSection: Failed to delete sectionID=%d: %v", sectionID, err)
		storeError(w, err, "Section")
		return
	}
	writeSuccess(w)
}
