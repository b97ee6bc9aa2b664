package handler

import (
	"net/http"

	"github.com/osse101/BattleArena_Go/internal/battle"
	"github.com/osse101/BattleArena_Go/internal/logger"
	"github.com/osse101/BattleArena_Go/internal/roster"
)

// UnitRequest describes one unit in a battle request
type UnitRequest struct {
	Name  string   `json:"name" validate:"required,notblank,max=100,excludesall=\x00\n\r\t"`
	Items []string `json:"items" validate:"max=2,dive,max=100"`
}

// StartBattleRequest describes both armies
type StartBattleRequest struct {
	Army1 []UnitRequest `json:"army1" validate:"required,min=1,max=5,dive"`
	Army2 []UnitRequest `json:"army2" validate:"required,min=1,max=5,dive"`
}

func (req StartBattleRequest) toService() battle.Request {
	return battle.Request{Army1: unitSpecs(req.Army1), Army2: unitSpecs(req.Army2)}
}

func unitSpecs(units []UnitRequest) []roster.UnitSpec {
	specs := make([]roster.UnitSpec, len(units))
	for i, u := range units {
		specs[i] = roster.UnitSpec{Name: u.Name, Items: u.Items}
	}
	return specs
}

// BattleHandler runs and serves battles
type BattleHandler struct {
	service battle.Service
}

// NewBattleHandler creates a BattleHandler
func NewBattleHandler(service battle.Service) *BattleHandler {
	return &BattleHandler{service: service}
}

// HandleStartBattle runs a battle to completion and returns its report
func (h *BattleHandler) HandleStartBattle(w http.ResponseWriter, r *http.Request) {
	var req StartBattleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start battle"); err != nil {
		return
	}

	report, err := h.service.Start(r.Context(), req.toService())
	if err != nil {
		respondServiceError(w, r, ErrMsgStartBattleFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgBattleStarted,
		"battle_id", report.ID,
		"outcome", report.Outcome,
		"rounds", report.Rounds)
	w.Header().Set("Location", "/api/v1/battles/"+report.ID)
	respondJSON(w, http.StatusCreated, report)
}

// HandleGetBattle returns a stored battle report
func (h *BattleHandler) HandleGetBattle(w http.ResponseWriter, r *http.Request) {
	id, ok := GetPathParam(r, w, "id")
	if !ok {
		return
	}

	report, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetBattleFailed, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
