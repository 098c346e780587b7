package http

import (
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) getStates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getStates").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	contactStates, err := h.services.ContactService.GetStates(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStates").Msg("error getting user contact states")
		http.Error(w, "error getting user contact states", statusFromError(err))
		return
	}

	response := models.StatesResponse{
		ContactStates: contactStates,
		Length:        len(contactStates),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
