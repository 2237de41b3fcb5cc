package server

import (
	"encoding/json"
	"net/http"

	"github.com/pitwall-dev/pit-strategy-go/log"
	"github.com/pitwall-dev/pit-strategy-go/pkg/predict"
	"github.com/pitwall-dev/pit-strategy-go/pkg/simulation"
	"github.com/pitwall-dev/pit-strategy-go/version"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK,
		&StatusResponse{Message: "pit strategy service is running"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, &VersionResponse{Version: version.FullVersion})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req SimulationRequest
	if !s.decode(w, r, &req) {
		return
	}
	state := req.raceState()
	scenarios := req.scenarios()
	if err := simulation.ValidateRequest(state, scenarios); err != nil {
		s.writeValidationError(w, r, err)
		return
	}

	ranking, err := s.newSim().RankScenarios(state, scenarios)
	if err != nil {
		log.GetFromContext(r.Context()).Error("ranking failed", log.ErrorField(err))
		s.writeJSON(w, http.StatusInternalServerError,
			&ErrorResponse{Error: "simulation failed"})
		return
	}

	adv, err := s.advisor.GetAdvice(r.Context(), state)
	if err != nil {
		// advice is an add-on; the simulation result is still useful
		log.GetFromContext(r.Context()).Warn("advisor unavailable", log.ErrorField(err))
		adv = nil
	}
	s.writeJSON(w, http.StatusOK, toSimulationResponse(ranking, adv))
}

func (s *Server) handlePredictUndercut(w http.ResponseWriter, r *http.Request) {
	var req PredictionRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, toPredictionResponse(predict.Undercut(req.input())))
}

func (s *Server) handlePredictOvercut(w http.ResponseWriter, r *http.Request) {
	var req PredictionRequest
	if !s.decode(w, r, &req) {
		return
	}
	s.writeJSON(w, http.StatusOK, toPredictionResponse(predict.Overcut(req.input())))
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		s.writeJSON(w, http.StatusBadRequest,
			&ErrorResponse{Error: "malformed request body"})
		return false
	}
	return true
}

func (s *Server) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	details := []string{err.Error()}
	if ve, ok := simulation.IsValidationError(err); ok {
		details = ve.Problems
	}
	log.GetFromContext(r.Context()).Debug("request rejected",
		log.Any("details", details))
	s.writeJSON(w, http.StatusBadRequest,
		&ErrorResponse{Error: "validation failed", Details: details})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.l.Error("could not write response", log.ErrorField(err))
	}
}
