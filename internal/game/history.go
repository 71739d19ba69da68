package game

import (
	"container/list"
	"time"
)

// TurnRecord is one simulated turn as stored in the ledger
type TurnRecord struct {
	SessionID   string    `json:"session_id"`
	Turn        int       `json:"turn"`
	Strategy    string    `json:"strategy"`
	CardsPlayed []string  `json:"cards_played"`
	ManaUsed    int       `json:"mana_used"`
	Targets     []string  `json:"targets_attacked"`
	DamageDealt int       `json:"damage_dealt"`
	PlayedAt    time.Time `json:"played_at"`
}

// TurnHistory accumulates turn records until they are persisted
type TurnHistory struct {
	pending *list.List // *TurnRecord
}

// NewTurnHistory creates an empty history
func NewTurnHistory() *TurnHistory {
	return &TurnHistory{
		pending: list.New(),
	}
}

// Record adds a turn to the history
func (h *TurnHistory) Record(rec *TurnRecord) {
	h.pending.PushBack(rec)
}

// Drain pops all pending records in turn order
func (h *TurnHistory) Drain() []*TurnRecord {
	var recs []*TurnRecord
	for elem := h.pending.Front(); elem != nil; elem = elem.Next() {
		recs = append(recs, elem.Value.(*TurnRecord))
	}
	h.pending.Init()
	return recs
}

// HasPending returns true if there are records not yet drained
func (h *TurnHistory) HasPending() bool {
	return h.pending.Len() > 0
}

// Count returns the number of pending records
func (h *TurnHistory) Count() int {
	return h.pending.Len()
}
