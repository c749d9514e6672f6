package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBoardAddsCreatorAsSoleMember(t *testing.T) {
	s := newTestStore(t)
	user := createTestUser(t, s, "ada@example.com")

	board, err := s.CreateBoard("Retro", 3, user.ID)
	require.NoError(t, err)
	assert.NotZero(t, board.ID)
	assert.Equal(t, "Retro", board.Name)
	assert.Equal(t, 3, board.MaxVotes)

	fetched, err := s.BoardByID(board.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Users, 1)
	assert.Equal(t, user.ID, fetched.Users[0].ID)
}

func TestCreateBoardUnknownCreator(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateBoard("Retro", 3, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBoardsForUserScopedByMembership(t *testing.T) {
	s := newTestStore(t)
	ada := createTestUser(t, s, "ada@example.com")
	bob := createTestUser(t, s, "bob@example.com")

	mine, err := s.CreateBoard("Mine", 3, ada.ID)
	require.NoError(t, err)
	_, err = s.CreateBoard("Theirs", 3, bob.ID)
	require.NoError(t, err)
	_, err = s.CreateSection("Went well", mine.ID)
	require.NoError(t, err)

	boards, err := s.BoardsForUser(ada.ID)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, mine.ID, boards[0].ID)
	// Sections come inlined, one level deep
	require.Len(t, boards[0].Sections, 1)
	assert.Equal(t, "Went well", boards[0].Sections[0].Name)
}

func TestBoardByIDReturnsFullSubtree(t *testing.T) {
	s := newTestStore(t)
	ada := createTestUser(t, s, "ada@example.com")

	board, err := s.CreateBoard("Retro", 3, ada.ID)
	require.NoError(t, err)
	section, err := s.CreateSection("Went well", board.ID)
	require.NoError(t, err)
	card, err := s.CreateCard("Shipped feature X", section.ID)
	require.NoError(t, err)
	require.NoError(t, s.Vote(card.ID, ada.ID))
	_, err = s.CreateComment(card.ID, ada.ID, "agreed")
	require.NoError(t, err)

	fetched, err := s.BoardByID(board.ID)
	require.NoError(t, err)

	require.Len(t, fetched.Sections, 1)
	gotSection := fetched.Sections[0]
	assert.Equal(t, board.ID, gotSection.BoardID)

	require.Len(t, gotSection.Cards, 1)
	gotCard := gotSection.Cards[0]
	require.NotNil(t, gotCard.SectionID)
	assert.Equal(t, section.ID, *gotCard.SectionID)

	require.Len(t, gotCard.Votes, 1)
	assert.Equal(t, ada.ID, gotCard.Votes[0].ID)

	require.Len(t, gotCard.Comments, 1)
	assert.Equal(t, card.ID, gotCard.Comments[0].CardID)
	assert.Equal(t, ada.ID, gotCard.Comments[0].Author.ID)
	assert.Equal(t, "ada@example.com", gotCard.Comments[0].Author.Email)
}

func TestUpdateBoardKeepsAbsentFields(t *testing.T) {
	s := newTestStore(t)
	ada := createTestUser(t, s, "ada@example.com")
	board, err := s.CreateBoard("Retro", 3, ada.ID)
	require.NoError(t, err)

	// nil means not provided
	newVotes := 5
	require.NoError(t, s.UpdateBoard(board.ID, nil, &newVotes))

	fetched, err := s.BoardByID(board.ID)
	require.NoError(t, err)
	assert.Equal(t, "Retro", fetched.Name)
	assert.Equal(t, 5, fetched.MaxVotes)
}

func TestUpdateBoardExplicitZeroOverwrites(t *testing.T) {
	s := newTestStore(t)
	ada := createTestUser(t, s, "ada@example.com")
	board, err := s.CreateBoard("Retro", 3, ada.ID)
	require.NoError(t, err)

	// A provided zero value is distinguishable from not-provided
	empty := ""
	zero := 0
	require.NoError(t, s.UpdateBoard(board.ID, &empty, &zero))

	fetched, err := s.BoardByID(board.ID)
	require.NoError(t, err)
	assert.Equal(t, "", fetched.Name)
	assert.Equal(t, 0, fetched.MaxVotes)
}

func TestUpdateBoardNotFound(t *testing.T) {
	s := newTestStore(t)

	name := "x"
	assert.ErrorIs(t, s.UpdateBoard(99, &name, nil), ErrNotFound)
}

func TestDeleteBoardLeavesSectionsDangling(t *testing.T) {
	s := newTestStore(t)
	ada := createTestUser(t, s, "ada@example.com")
	board, err := s.CreateBoard("Retro", 3, ada.ID)
	require.NoError(t, err)
	_, err = s.CreateSection("Went well", board.ID)
	require.NoError(t, err)

	require.NoError(t, s.DeleteBoard(board.ID))

	_, err = s.BoardByID(board.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting the board does not cascade: sections keep their
	// BoardID and remain queryable.
	sections, err := s.SectionsForBoard(board.ID)
	require.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestDeleteBoardNotFound(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.DeleteBoard(7), ErrNotFound)
}

func TestBoardMembership(t *testing.T) {
	s := newTestStore(t)
	ada := createTestUser(t, s, "ada@example.com")
	bob := createTestUser(t, s, "bob@example.com")
	board, err := s.CreateBoard("Retro", 3, ada.ID)
	require.NoError(t, err)

	require.NoError(t, s.AddUserToBoard(bob.ID, board.ID))

	boards, err := s.BoardsForUser(bob.ID)
	require.NoError(t, err)
	require.Len(t, boards, 1)

	// Re-adding an existing member leaves a single edge
	require.NoError(t, s.AddUserToBoard(bob.ID, board.ID))
	fetched, err := s.BoardByID(board.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Users, 2)

	require.NoError(t, s.RemoveUserFromBoard(bob.ID, board.ID))
	boards, err = s.BoardsForUser(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, boards)

	// Removing an absent member is a no-op
	require.NoError(t, s.RemoveUserFromBoard(bob.ID, board.ID))
}

func TestBoardMembershipUnknownIDs(t *testing.T) {
	s := newTestStore(t)
	ada := createTestUser(t, s, "ada@example.com")
	board, err := s.CreateBoard("Retro", 3, ada.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, s.AddUserToBoard(99, board.ID), ErrNotFound)
	assert.ErrorIs(t, s.AddUserToBoard(ada.ID, 99), ErrNotFound)
	assert.ErrorIs(t, s.RemoveUserFromBoard(99, board.ID), ErrNotFound)
}
