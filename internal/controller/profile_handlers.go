package controller

import (
	"net/http"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

func (r *Router) handleGetProfile(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	respondJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name          *string  `json:"name"`
	Bio           *string  `json:"bio"`
	Affiliation   *string  `json:"affiliation"`
	Visibility    *string  `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE"`
	Notifications *bool    `json:"notifications_enabled"`
	OJTStatus     *string  `json:"ojt_status" validate:"omitempty,oneof=SEARCHING HIRED COMPLETED INACTIVE"`
	CompanyStatus *string  `json:"company_status" validate:"omitempty,oneof=HIRING CLOSED"`
	AddSkills     []string `json:"add_skills"`
	RemoveSkills  []string `json:"remove_skills"`
}

// handleUpdateProfile собирает черновик и коммитит его. Отмена запроса
// до конца имитируемой задержки тихо отбрасывает изменения.
func (r *Router) handleUpdateProfile(w http.ResponseWriter, req *http.Request) {
	var body updateProfileRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	draft, err := r.profiles.NewDraft()
	if err != nil {
		respondError(w, err)
		return
	}

	if body.Name != nil {
		draft.SetName(*body.Name)
	}
	if body.Bio != nil {
		draft.SetBio(*body.Bio)
	}
	if body.Affiliation != nil {
		draft.SetAffiliation(*body.Affiliation)
	}
	if body.Visibility != nil {
		draft.SetVisibility(model.Visibility(*body.Visibility))
	}
	if body.Notifications != nil {
		draft.SetNotifications(*body.Notifications)
	}
	if body.OJTStatus != nil {
		draft.SetOJTStatus(model.OJTStatus(*body.OJTStatus))
	}
	if body.CompanyStatus != nil {
		draft.SetCompanyStatus(model.CompanyStatus(*body.CompanyStatus))
	}
	for _, skill := range body.AddSkills {
		draft.AddSkill(skill)
	}
	for _, skill := range body.RemoveSkills {
		draft.RemoveSkill(skill)
	}

	updated, err := draft.Commit(req.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	if updated == nil {
		// Коммит отброшен: пользователь ушёл или сессия сменилась
		respondJSON(w, http.StatusOK, map[string]bool{"applied": false})
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
