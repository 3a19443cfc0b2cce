// Package verification models the client-facing generation workflow: pick a
// deck, generate proposals, review each one, save. The session tracks which
// proposals were edited before saving so persisted cards carry an accurate
// ai_accepted flag.
package verification

import (
	"errors"
	"fmt"
	"sync"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Stage is the workflow step the session is in.
type Stage string

const (
	StageDeckSelection Stage = "deck_selection"
	StageGenerator     Stage = "generator"
	StageVerification  Stage = "verification"
	StageSuccess       Stage = "success"
)

// ItemState is the save state of one proposal under review.
type ItemState string

const (
	ItemStateIdle   ItemState = "idle"
	ItemStateSaving ItemState = "saving"
	ItemStateSaved  ItemState = "saved"
	ItemStateError  ItemState = "error"
)

// Workflow errors.
var (
	ErrWrongStage  = errors.New("operation not allowed in current stage")
	ErrItemUnknown = errors.New("unknown item")
	ErrItemState   = errors.New("operation not allowed in current item state")
)

// Item is one proposal being verified. IDs are session-local and start at 1.
type Item struct {
	ID      int
	Front   string
	Back    string
	State   ItemState
	Edited  bool
	SaveErr string
}

// Accepted reports the ai_accepted value to persist with this item:
// true when the proposal was saved untouched, false when it was edited.
// The edit latch is one-way. Editing content back to the original text
// still counts as edited.
func (it *Item) Accepted() bool {
	return !it.Edited
}

// Session is one user's pass through the generation workflow.
// Safe for concurrent use.
type Session struct {
	mu     sync.Mutex
	stage  Stage
	deckID string
	items  []*Item
	nextID int
}

// NewSession creates a session at the deck selection stage.
func NewSession() *Session {
	return &Session{stage: StageDeckSelection, nextID: 1}
}

// Stage returns the current workflow stage.
func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// DeckID returns the selected deck, empty until one is chosen.
func (s *Session) DeckID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deckID
}

// SelectDeck records the target deck and advances to the generator stage.
// Allowed from deck selection, and from the generator stage to change decks
// before anything is generated.
func (s *Session) SelectDeck(deckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageDeckSelection && s.stage != StageGenerator {
		return fmt.Errorf("select deck: %w", ErrWrongStage)
	}
	if deckID == "" {
		return fmt.Errorf("select deck: deck id is empty")
	}

	s.deckID = deckID
	s.stage = StageGenerator
	return nil
}

// SetProposals stores generated proposals and advances to verification.
// Re-generating from the generator stage replaces any previous items.
func (s *Session) SetProposals(proposals []domain.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageGenerator {
		return fmt.Errorf("set proposals: %w", ErrWrongStage)
	}
	if len(proposals) == 0 {
		return fmt.Errorf("set proposals: empty proposal list")
	}

	s.items = make([]*Item, 0, len(proposals))
	for _, p := range proposals {
		s.items = append(s.items, &Item{
			ID:    s.nextID,
			Front: p.FrontContent,
			Back:  p.BackContent,
			State: ItemStateIdle,
		})
		s.nextID++
	}
	s.stage = StageVerification
	return nil
}

// Items returns a snapshot of all items in insertion order.
func (s *Session) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	return out
}

// Edit replaces an item's content. The edited flag latches only when the
// content actually changes; writing back the identical text is a no-op for
// the flag. Only idle and error items can be edited; a card that is saving
// or saved is out of reach.
func (s *Session) Edit(id int, front, back string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageVerification {
		return fmt.Errorf("edit item: %w", ErrWrongStage)
	}

	it, err := s.find(id)
	if err != nil {
		return err
	}
	if it.State != ItemStateIdle && it.State != ItemStateError {
		return fmt.Errorf("edit item %d: %w", id, ErrItemState)
	}

	if front != it.Front || back != it.Back {
		it.Edited = true
	}
	it.Front = front
	it.Back = back
	return nil
}

// Delete removes an item from the session entirely. Discarded proposals
// leave no trace: nothing is persisted and nothing is sent anywhere. An item
// with a save in flight cannot be deleted. Deleting the last unsaved item
// completes the session when every remaining item is already saved.
func (s *Session) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageVerification {
		return fmt.Errorf("delete item: %w", ErrWrongStage)
	}

	it, err := s.find(id)
	if err != nil {
		return err
	}
	if it.State == ItemStateSaving {
		return fmt.Errorf("delete item %d: %w", id, ErrItemState)
	}

	kept := make([]*Item, 0, len(s.items)-1)
	for _, other := range s.items {
		if other.ID != id {
			kept = append(kept, other)
		}
	}
	s.items = kept

	if s.allSaved() {
		s.stage = StageSuccess
	}
	return nil
}

// BeginSave moves an item to the saving state. Items in the error state can
// be retried.
func (s *Session) BeginSave(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageVerification {
		return fmt.Errorf("begin save: %w", ErrWrongStage)
	}

	it, err := s.find(id)
	if err != nil {
		return err
	}
	if it.State != ItemStateIdle && it.State != ItemStateError {
		return fmt.Errorf("begin save item %d: %w", id, ErrItemState)
	}

	it.State = ItemStateSaving
	it.SaveErr = ""
	return nil
}

// CompleteSave marks a saving item as saved. When every item is saved the
// session advances to the success stage.
func (s *Session) CompleteSave(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageVerification {
		return fmt.Errorf("complete save: %w", ErrWrongStage)
	}

	it, err := s.find(id)
	if err != nil {
		return err
	}
	if it.State != ItemStateSaving {
		return fmt.Errorf("complete save item %d: %w", id, ErrItemState)
	}

	it.State = ItemStateSaved

	if s.allSaved() {
		s.stage = StageSuccess
	}
	return nil
}

// FailSave marks a saving item as failed, keeping the error message for
// display. The item can be edited and retried.
func (s *Session) FailSave(id int, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageVerification {
		return fmt.Errorf("fail save: %w", ErrWrongStage)
	}

	it, err := s.find(id)
	if err != nil {
		return err
	}
	if it.State != ItemStateSaving {
		return fmt.Errorf("fail save item %d: %w", id, ErrItemState)
	}

	it.State = ItemStateError
	it.SaveErr = reason
	return nil
}

// RemainingIDs returns the IDs of items that still need saving, in order.
// Used by "save remaining" to fan out individual saves.
func (s *Session) RemainingIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []int
	for _, it := range s.items {
		if it.State == ItemStateIdle || it.State == ItemStateError {
			ids = append(ids, it.ID)
		}
	}
	return ids
}

// StartOver returns to the generator stage, discarding unsaved items.
// Already saved cards stay in the database; the session only forgets them.
// Allowed from verification and from success (to generate another batch
// into the same deck).
func (s *Session) StartOver() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageVerification && s.stage != StageSuccess {
		return fmt.Errorf("start over: %w", ErrWrongStage)
	}

	s.items = nil
	s.stage = StageGenerator
	return nil
}

// Cancel abandons the session entirely, returning to deck selection.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.deckID = ""
	s.stage = StageDeckSelection
}

func (s *Session) find(id int) (*Item, error) {
	for _, it := range s.items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("item %d: %w", id, ErrItemUnknown)
}

func (s *Session) allSaved() bool {
	for _, it := range s.items {
		if it.State != ItemStateSaved {
			return false
		}
	}
	return len(s.items) > 0
}
