package controller

import (
	"net/http"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/service"
)

func (r *Router) handleListPostings(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.postings.List(req.URL.Query().Get("category")))
}

// handleMyPostings отдаёт вакансии компании текущего пользователя.
// Владение резолвится по Affiliation, как и при создании.
func (r *Router) handleMyPostings(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	respondJSON(w, http.StatusOK, r.postings.ListByCompany(user.Affiliation))
}

type createPostingRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Slots       int     `json:"slots" validate:"gte=0"`
	Skills      string  `json:"skills"`
	Address     string  `json:"address"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

// handleCreatePosting — операция экрана управления слотами.
// Контентный гейт: только верифицированный бизнес.
func (r *Router) handleCreatePosting(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	if user.Role != model.RoleBusiness {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "only businesses manage postings"})
		return
	}
	if !user.IsVerified {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "business is pending verification"})
		return
	}

	var body createPostingRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	posting, err := r.postings.Create(user.Affiliation, service.PostingDraft{
		Title:       body.Title,
		Description: body.Description,
		Category:    model.Category(body.Category),
		Slots:       body.Slots,
		Skills:      body.Skills,
		Address:     body.Address,
		Lat:         body.Lat,
		Lng:         body.Lng,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, posting)
}

func (r *Router) handleTogglePosting(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	if user.Role != model.RoleBusiness {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "only businesses manage postings"})
		return
	}
	if !user.IsVerified {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "business is pending verification"})
		return
	}

	posting, err := r.postings.ToggleStatus(idFromPath(req.URL.Path, 1))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, posting)
}

func (r *Router) handleMarkers(w http.ResponseWriter, req *http.Request) {
	respondJSON(w, http.StatusOK, r.postings.Markers())
}
