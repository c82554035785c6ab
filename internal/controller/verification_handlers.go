package controller

import (
	"net/http"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

func (r *Router) handleListVerifications(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	if user.Role != model.RoleCoordinator {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "only coordinators review verifications"})
		return
	}
	respondJSON(w, http.StatusOK, r.verifications.Pending())
}

func (r *Router) handleApproveVerification(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	if user.Role != model.RoleCoordinator {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "only coordinators review verifications"})
		return
	}

	business, err := r.verifications.Approve(idFromPath(req.URL.Path, 1))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, business)
}
