package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/service"
)

var validate = validator.New()

type sessionResponse struct {
	LoggedIn bool               `json:"logged_in"`
	User     *model.UserProfile `json:"user,omitempty"`
	View     model.View         `json:"view,omitempty"`
	Contact  *model.ChatContact `json:"contact,omitempty"`
}

// handleLogin принимает профиль как есть: проверки учётных данных нет,
// бэкенда аутентификации не существует
func (r *Router) handleLogin(w http.ResponseWriter, req *http.Request) {
	var profile model.UserProfile
	if err := decodeJSON(req, &profile); err != nil {
		respondError(w, err)
		return
	}

	user, view, err := r.sessions.Login(&profile)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sessionResponse{LoggedIn: true, User: user, View: view})
}

type registerRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required,oneof=STUDENT BUSINESS COORDINATOR"`
	Affiliation string `json:"affiliation"`
}

func (r *Router) handleRegister(w http.ResponseWriter, req *http.Request) {
	var body registerRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	user, view, err := r.sessions.Register(service.RegisterInput{
		Name:        body.Name,
		Email:       body.Email,
		Role:        model.Role(body.Role),
		Affiliation: body.Affiliation,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, sessionResponse{LoggedIn: true, User: user, View: view})
}

func (r *Router) handleLogout(w http.ResponseWriter, req *http.Request) {
	if err := r.sessions.Logout(); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, sessionResponse{LoggedIn: false})
}

// handleSession отдаёт снимок сессии. Разлогиненное состояние — не ошибка.
func (r *Router) handleSession(w http.ResponseWriter, req *http.Request) {
	user, view, contact := r.sessions.Current()
	respondJSON(w, http.StatusOK, sessionResponse{
		LoggedIn: user != nil,
		User:     user,
		View:     view,
		Contact:  contact,
	})
}

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

type navigateResponse struct {
	View model.View `json:"view"`
}

// handleNavigate переключает экран. Редирект неверифицированного бизнеса
// виден клиенту по отличию view в ответе от запрошенного.
func (r *Router) handleNavigate(w http.ResponseWriter, req *http.Request) {
	var body navigateRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	view, err := r.sessions.Navigate(model.View(body.View))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, navigateResponse{View: view})
}

type startChatRequest struct {
	PostingID string `json:"posting_id" validate:"required"`
}

func (r *Router) handleStartChat(w http.ResponseWriter, req *http.Request) {
	var body startChatRequest
	if err := decodeJSON(req, &body); err != nil {
		respondError(w, err)
		return
	}
	if err := validate.Struct(body); err != nil {
		respondError(w, err)
		return
	}

	posting := r.postings.Get(body.PostingID)
	if posting == nil {
		respondError(w, model.ErrNotFound)
		return
	}

	contact, err := r.sessions.StartChat(posting)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, contact)
}
