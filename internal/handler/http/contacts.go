package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/models"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.upload").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var uploadRequest models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&uploadRequest); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// The token is the single source of ownership: the body's user_id is
	// overridden so a client cannot write into another user's contact set.
	uploadRequest.UserID = userID

	if err := h.services.ContactService.UploadContacts(ctx, uploadRequest); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error uploading contacts")
		http.Error(w, "error uploading contacts", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.download").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var downloadRequest models.DownloadRequest
	if err := json.NewDecoder(r.Body).Decode(&downloadRequest); err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	downloadRequest.UserID = userID

	contacts, err := h.services.ContactService.DownloadContacts(ctx, downloadRequest)
	if err != nil {
		log.Err(err).Str("func", "*Handler.download").Msg("error downloading contacts")
		http.Error(w, "error downloading contacts", statusFromError(err))
		return
	}

	response := models.DownloadResponse{
		Contacts: contacts,
		Length:   len(contacts),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.update").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var updateRequest models.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updateRequest.UserID = userID

	if err := h.services.ContactService.UpdateContacts(ctx, updateRequest); err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("error updating contacts")
		http.Error(w, "error updating contacts", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.delete").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var deleteRequest models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&deleteRequest); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	deleteRequest.UserID = userID

	if err := h.services.ContactService.DeleteContacts(ctx, deleteRequest); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("error deleting contacts")
		http.Error(w, "error deleting contacts", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) undelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.undelete").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	var undeleteRequest models.UndeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&undeleteRequest); err != nil {
		log.Err(err).Str("func", "*Handler.undelete").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	undeleteRequest.UserID = userID

	if err := h.services.ContactService.UndeleteContacts(ctx, undeleteRequest); err != nil {
		log.Err(err).Str("func", "*Handler.undelete").Msg("error restoring contacts")
		http.Error(w, "error restoring contacts", statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
