package handlers

import (
	"net/http"

	"github.com/cironunes/funretro-api/middleware"
)

// Router builds the full route table with session resolution applied.
// Mutating routes additionally require an authenticated user.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()

	// Auth
	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.HandleFunc("POST /api/auth/logout", middleware.RequireUser(h.Logout))
	mux.HandleFunc("GET /api/me", h.Me)

	// Boards
	mux.HandleFunc("GET /api/boards", middleware.RequireUser(h.ListBoards))
	mux.HandleFunc("POST /api/boards", middleware.RequireUser(h.CreateBoard))
	mux.HandleFunc("GET /api/boards/{boardID}", h.GetBoard)
	mux.HandleFunc("PUT /api/boards/{boardID}", middleware.RequireUser(h.UpdateBoard))
	mux.HandleFunc("DELETE /api/boards/{boardID}", middleware.RequireUser(h.DeleteBoard))
	mux.HandleFunc("POST /api/boards/{boardID}/members/{userID}", middleware.RequireUser(h.AddMember))
	mux.HandleFunc("DELETE /api/boards/{boardID}/members/{userID}", middleware.RequireUser(h.RemoveMember))

	// Sections
	mux.HandleFunc("GET /api/boards/{boardID}/sections", h.ListSections)
	mux.HandleFunc("POST /api/boards/{boardID}/sections", middleware.RequireUser(h.CreateSection))
	mux.HandleFunc("PUT /api/sections/{sectionID}", middleware.RequireUser(h.UpdateSection))
	mux.HandleFunc("DELETE /api/sections/{sectionID}", middleware.RequireUser(h.DeleteSection))

	// Cards
	mux.HandleFunc("GET /api/sections/{sectionID}/cards", h.ListCards)
	mux.HandleFunc("POST /api/sections/{sectionID}/cards", middleware.RequireUser(h.CreateCard))
	mux.HandleFunc("PUT /api/cards/{cardID}", middleware.RequireUser(h.UpdateCard))
	mux.HandleFunc("DELETE /api/cards/{cardID}", middleware.RequireUser(h.DeleteCard))
	mux.HandleFunc("PUT /api/cards/{cardID}/section", middleware.RequireUser(h.MoveCard))
	mux.HandleFunc("POST /api/cards/{cardID}/votes/{userID}", middleware.RequireUser(h.Vote))
	mux.HandleFunc("DELETE /api/cards/{cardID}/votes/{userID}", middleware.RequireUser(h.Unvote))

	// Comments
	mux.HandleFunc("GET /api/cards/{cardID}/comments", h.ListComments)
	mux.HandleFunc("POST /api/cards/{cardID}/comments", middleware.RequireUser(h.CreateComment))
	mux.HandleFunc("PUT /api/comments/{commentID}", middleware.RequireUser(h.UpdateComment))
	mux.HandleFunc("DELETE /api/comments/{commentID}", middleware.RequireUser(h.DeleteComment))

	resolve := middleware.ResolveSession(h.Sessions, h.Store)
	return resolve(mux)
}
