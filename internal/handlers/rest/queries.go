package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	economyv1alpha1 "github.com/KirkDiggler/rpg-economy/internal/api/economy/v1alpha1"
)

func (rt *router) getCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := rt.economy.GetCharacter(r.Context(), &economyv1alpha1.GetCharacterRequest{CharacterID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Character)
}

func (rt *router) getMetadata(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := rt.economy.GetCharacterMetadata(r.Context(), &economyv1alpha1.GetCharacterMetadataRequest{CharacterID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Metadata)
}

func (rt *router) getOwner(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := rt.economy.GetCharacterOwner(r.Context(), &economyv1alpha1.GetCharacterOwnerRequest{CharacterID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *router) getStake(w http.ResponseWriter, r *http.Request) {
	id, err := characterID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	resp, err := rt.economy.GetStakedInfo(r.Context(), &economyv1alpha1.GetStakedInfoRequest{CharacterID: id})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp.Stake)
}

type balancesResponse struct {
	Account    string `json:"account"`
	Reward     uint64 `json:"reward"`
	Governance uint64 `json:"governance"`
}

func (rt *router) getBalances(w http.ResponseWriter, r *http.Request) {
	req := &economyv1alpha1.GetBalanceRequest{Account: chi.URLParam(r, "account")}

	resp, err := rt.economy.GetBalances(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, balancesResponse{
		Account:    req.Account,
		Reward:     resp.Reward,
		Governance: resp.Governance,
	})
}

type paramsResponse struct {
	Owner         string `json:"owner"`
	EvolutionCost uint64 `json:"evolution_cost"`
	DungeonReward uint64 `json:"dungeon_reward"`
	NextID        uint64 `json:"next_id"`
}

func (rt *router) getParams(w http.ResponseWriter, r *http.Request) {
	params, err := rt.economy.GetParams(r.Context(), &economyv1alpha1.GetParamsRequest{})
	if err != nil {
		writeError(w, err)
		return
	}
	last, err := rt.economy.GetLastTokenID(r.Context(), &economyv1alpha1.GetLastTokenIDRequest{})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, paramsResponse{
		Owner:         params.Owner,
		EvolutionCost: params.Params.EvolutionCost,
		DungeonReward: params.Params.DungeonReward,
		NextID:        last.NextID,
	})
}
