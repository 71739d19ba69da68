package api

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/qninhdt/datadeck/server/internal/cards"
	"github.com/qninhdt/datadeck/server/internal/factory"
	"github.com/qninhdt/datadeck/server/internal/game"
	mw "github.com/qninhdt/datadeck/server/internal/middleware"
	"github.com/qninhdt/datadeck/server/internal/strategy"
	"github.com/qninhdt/datadeck/server/internal/validation"
)

type createSessionRequest struct {
	Strategy   string `json:"strategy"`
	PlayRule   string `json:"play_rule"`
	TargetRule string `json:"target_rule"`
	// Creature names from the catalog placed on the enemy battlefield
	EnemyBattlefield []string `json:"enemy_battlefield"`
}

// buildStrategy resolves a builtin strategy or compiles custom rules
func buildStrategy(req createSessionRequest) (strategy.Strategy, error) {
	if req.PlayRule == "" && req.TargetRule == "" {
		return strategy.Lookup(req.Strategy)
	}
	play, target := req.PlayRule, req.TargetRule
	if play == "" {
		play = strategy.AggressivePlayRule
	}
	if target == "" {
		target = strategy.AggressiveTargetRule
	}
	if err := validation.ValidateRule(play); err != nil {
		return nil, err
	}
	if err := validation.ValidateRule(target); err != nil {
		return nil, err
	}
	return strategy.NewRuleStrategy("Custom Strategy", play, target)
}

// createSession creates a configured engine with a shuffled deck and an opening hand
func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	strat, err := buildStrategy(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	enemies := make([]cards.Card, 0, len(req.EnemyBattlefield))
	for _, name := range req.EnemyBattlefield {
		if err := validation.ValidateCardName(name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		enemy, err := s.factory.CreateCreature(factory.ByName(name))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Unknown creature: "+name)
			return
		}
		enemies = append(enemies, enemy)
	}

	opts := []game.Option{game.WithLogger(s.logger.Named("engine"))}
	if s.opts.Seed != 0 {
		opts = append(opts, game.WithSeed(s.opts.Seed))
	}
	engine := game.NewGameEngine(opts...)

	if err := engine.ConfigureEngine(s.factory, strat); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to configure session")
		return
	}
	if err := engine.BuildDeck(s.opts.DeckSize); err != nil {
		s.logger.Error("build deck failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to build deck")
		return
	}
	if _, err := engine.DrawCards(s.opts.HandSize); err != nil {
		s.logger.Error("opening hand failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to draw opening hand")
		return
	}
	engine.SetEnemyBattlefield(enemies)

	if err := s.db.SaveSession(r.Context(), engine.ID, mw.UserID(r.Context()), strat.GetStrategyName()); err != nil {
		s.logger.Error("save session failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save session")
		return
	}

	s.sessionsMu.Lock()
	s.sessions[engine.ID] = engine
	s.sessionsMu.Unlock()

	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Data:    sessionView(engine),
	})
}

func sessionView(engine *game.GameEngine) map[string]interface{} {
	return map[string]interface{}{
		"id":     engine.ID,
		"status": engine.GetEngineStatus(),
		"board":  engine.GetBoard(),
	}
}

// getSession returns engine status and board
func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	engine, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    sessionView(engine),
	})
}

// drawCards moves cards from the deck into the hand
func (s *Server) drawCards(w http.ResponseWriter, r *http.Request) {
	engine, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if !s.checkSessionOwnership(w, r, engine.ID) {
		return
	}

	req := struct {
		Count int `json:"count"`
	}{Count: 1}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validation.ValidateDrawCount(req.Count); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	drawn, err := engine.DrawCards(req.Count)
	if errors.Is(err, game.ErrNotEnoughCards) {
		writeError(w, http.StatusConflict, "Not enough cards in deck")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to draw cards")
		return
	}

	infos := make([]map[string]interface{}, 0, len(drawn))
	for _, c := range drawn {
		infos = append(infos, c.GetCardInfo())
	}
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"drawn": infos,
			"board": engine.GetBoard(),
		},
	})
}

// simulateTurn runs one turn and appends it to the ledger
func (s *Server) simulateTurn(w http.ResponseWriter, r *http.Request) {
	engine, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	if !s.checkSessionOwnership(w, r, engine.ID) {
		return
	}

	summary, err := engine.SimulateTurn()
	if err != nil {
		s.logger.Error("simulate turn failed", zap.String("session_id", engine.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to simulate turn")
		return
	}

	if err := s.db.SaveTurns(r.Context(), engine.DrainHistory()); err != nil {
		s.logger.Error("save turns failed", zap.String("session_id", engine.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to save turn")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"turn":   summary,
			"status": engine.GetEngineStatus(),
		},
	})
}

// listTurns returns the stored turns of a session
func (s *Server) listTurns(w http.ResponseWriter, r *http.Request) {
	engine, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	turns, err := s.db.ListTurns(r.Context(), engine.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list turns")
		return
	}

	writeJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    turns,
	})
}
