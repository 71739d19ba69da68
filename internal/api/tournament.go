package api

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/qninhdt/datadeck/server/internal/cards"
	"github.com/qninhdt/datadeck/server/internal/validation"
)

const (
	defaultMatchLimit = 50
	maxMatchLimit     = 200
)

type registerCardRequest struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	Rarity  string `json:"rarity"`
	Damage  int    `json:"damage"`
	Defense int    `json:"defense"`
	Health  int    `json:"health"`
	Rating  int    `json:"rating"`
}

func (req registerCardRequest) validate() error {
	if err := validation.ValidateCardID(req.ID, true); err != nil {
		return err
	}
	if err := validation.ValidateCardName(req.Name); err != nil {
		return err
	}
	for field, v := range map[string]int{"cost": req.Cost, "damage": req.Damage, "defense": req.Defense, "health": req.Health} {
		if err := validation.ValidateStat(field, v); err != nil {
			return err
		}
	}
	return validation.ValidateRating(req.Rating)
}

// registerCard adds a tournament card to the platform
func (s *Server) registerCard(w http.ResponseWriter, r *http.Request) {
	req := registerCardRequest{Rarity: "Common", Rating: 1000}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	card, err := cards.NewTournamentCard(req.Name, req.Cost, req.Rarity, req.Damage, req.Defense, req.Health, req.ID, req.Rating)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := s.platform.RegisterCard(card)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Data: map[string]interface{}{
			"message": msg,
			"card":    card.GetTournamentStats(),
		},
	})
}

// createMatch runs a match and records it, including failed lookups
func (s *Server) createMatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Card1ID string `json:"card1_id"`
		Card2ID string `json:"card2_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateCardID(req.Card1ID, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid card1_id")
		return
	}
	if err := validation.ValidateCardID(req.Card2ID, false); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid card2_id")
		return
	}

	if req.Card1ID == req.Card2ID {
		writeError(w, http.StatusBadRequest, "card1_id and card2_id must differ")
		return
	}

	result, err := s.platform.CreateMatch(req.Card1ID, req.Card2ID)
	if err != nil {
		s.logger.Error("match failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to run match")
		return
	}

	if err := s.db.SaveMatch(r.Context(), req.Card1ID, req.Card2ID, result); err != nil {
		s.logger.Error("save match failed", zap.Int("match", result.Number), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save match")
		return
	}

	if result.Error != "" {
		writeJSON(w, http.StatusNotFound, Response{
			Success: false,
			Data:    result,
			Error:   result.Error,
		})
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result,
	})
}

// listMatches returns recent matches from the ledger
func (s *Server) listMatches(w http.ResponseWriter, r *http.Request) {
	limit := defaultMatchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxMatchLimit {
			writeError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	matches, err := s.db.ListMatches(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list matches")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    matches,
	})
}

// getLeaderboard returns the ranked field
func (s *Server) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    s.platform.GetLeaderboard(),
	})
}

// getReport returns platform totals
func (s *Server) getReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    s.platform.GenerateTournamentReport(),
	})
}
