package controller

import (
	"net/http"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/service"
)

// handleListLogs: студент видит свои отчёты, бизнес и координатор — все
func (r *Router) handleListLogs(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	if user.Role == model.RoleStudent {
		respondJSON(w, http.StatusOK, r.worklogs.ForStudent(user.ID))
		return
	}
	respondJSON(w, http.StatusOK, r.worklogs.All())
}

type submitLogRequest struct {
	BusinessID string  `json:"business_id" validate:"required"`
	Date       string  `json:"date" validate:"required"`
	Hours      float64 `json:"hours" validate:"gt=0"`
	Tasks      string  `json:"tasks" validate:"required"`
}

func (r *Router) handleSubmitLog(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	if user.Role != model.RoleStudent {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "only students submit logs"})
		return
	}

	var body submitLogRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	entry, err := r.worklogs.Submit(req.Context(), service.SubmitLogInput{
		StudentID:   user.ID,
		StudentName: user.Name,
		BusinessID:  body.BusinessID,
		Date:        body.Date,
		Hours:       body.Hours,
		Tasks:       body.Tasks,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

type reviewLogRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
}

// handleReviewLog: решение принимает любой залогиненный бизнес,
// совпадение с BusinessID отчёта не проверяется (см. DESIGN.md)
func (r *Router) handleReviewLog(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	if user.Role != model.RoleBusiness {
		respondJSON(w, http.StatusForbidden, errorResponse{Error: "only businesses review logs"})
		return
	}

	var body reviewLogRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	entry, err := r.worklogs.Review(idFromPath(req.URL.Path, 1), model.LogStatus(body.Decision))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (r *Router) handleProgress(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	studentID := req.URL.Query().Get("student_id")
	if studentID == "" {
		studentID = user.ID
	}
	respondJSON(w, http.StatusOK, r.worklogs.ProgressFor(studentID))
}

func (r *Router) handleAdvice(w http.ResponseWriter, req *http.Request, user *model.UserProfile) {
	advice := r.worklogs.CareerAdvice(req.Context(), user)
	respondJSON(w, http.StatusOK, map[string]string{"advice": advice})
}
