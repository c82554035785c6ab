package controller

import (
	"net/http"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

func (r *Router) handleThread(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	other := req.URL.Query().Get("with")
	if other == "" {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "query parameter 'with' is required"})
		return
	}

	thread := r.messages.ThreadFor(user.ID, other)
	if thread == nil {
		thread = []*model.Message{}
	}
	respondJSON(w, http.StatusOK, thread)
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Text       string `json:"text"`
}

func (r *Router) handleSendMessage(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	var body sendMessageRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	msg, err := r.messages.Send(user.ID, body.ReceiverID, body.Text)
	if err != nil {
		respondError(w, err)
		return
	}

	// Текст из одних пробелов — тихий no-op, тред не меняется
	if msg == nil {
		respondJSON(w, http.StatusOK, map[string]bool{"sent": false})
		return
	}

	respondJSON(w, http.StatusCreated, msg)
}
