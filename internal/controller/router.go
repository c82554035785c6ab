package controller

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/service"
)

// Router — HTTP-адаптер над сервисами. Всё, кроме health и auth,
// доступно только при активной сессии.
type Router struct {
	sessions      *service.SessionService
	postings      *service.PostingService
	worklogs      *service.WorkLogService
	messages      *service.MessageService
	profiles      *service.ProfileService
	verifications *service.VerificationService
	logger        *zap.Logger
}

type RouterDependencies struct {
	Sessions      *service.SessionService
	Postings      *service.PostingService
	WorkLogs      *service.WorkLogService
	Messages      *service.MessageService
	Profiles      *service.ProfileService
	Verifications *service.VerificationService
	Logger        *zap.Logger
}

func NewRouter(deps RouterDependencies) http.Handler {
	r := &Router{
		sessions:      deps.Sessions,
		postings:      deps.Postings,
		worklogs:      deps.WorkLogs,
		messages:      deps.Messages,
		profiles:      deps.Profiles,
		verifications: deps.Verifications,
		logger:        deps.Logger,
	}
	return Chain(r.baseHandler(), Recover(deps.Logger), Logging(deps.Logger))
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && path == "/health":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		case req.Method == http.MethodPost && path == "/auth/login":
			r.handleLogin(w, req)
			return
		case req.Method == http.MethodPost && path == "/auth/register":
			r.handleRegister(w, req)
			return
		case req.Method == http.MethodGet && path == "/session":
			r.handleSession(w, req)
			return
		}

		// Сессионный гейт: без залогиненного пользователя дальше нельзя.
		// Снимок берётся один раз и передаётся обработчикам: сессия мутабельна,
		// logout из параллельного запроса не должен обнулить пользователя
		// между гейтом и обработчиком.
		user := r.sessions.User()
		if user == nil {
			respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "no active session"})
			return
		}

		switch {
		case req.Method == http.MethodPost && path == "/auth/logout":
			r.handleLogout(w, req)
		case req.Method == http.MethodPost && path == "/session/view":
			r.handleNavigate(w, req)
		case req.Method == http.MethodPost && path == "/session/chat":
			r.handleStartChat(w, req)
		case req.Method == http.MethodGet && path == "/postings":
			r.handleListPostings(w, req)
		case req.Method == http.MethodGet && path == "/postings/mine":
			r.handleMyPostings(w, req, user)
		case req.Method == http.MethodPost && path == "/postings":
			r.handleCreatePosting(w, req, user)
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/postings/") && strings.HasSuffix(path, "/status"):
			r.handleTogglePosting(w, req, user)
		case req.Method == http.MethodGet && path == "/map/markers":
			r.handleMarkers(w, req)
		case req.Method == http.MethodGet && path == "/logs":
			r.handleListLogs(w, req, user)
		case req.Method == http.MethodPost && path == "/logs":
			r.handleSubmitLog(w, req, user)
		case req.Method == http.MethodPatch && strings.HasPrefix(path, "/logs/") && strings.HasSuffix(path, "/status"):
			r.handleReviewLog(w, req, user)
		case req.Method == http.MethodGet && path == "/logs/progress":
			r.handleProgress(w, req, user)
		case req.Method == http.MethodPost && path == "/logs/advice":
			r.handleAdvice(w, req, user)
		case req.Method == http.MethodGet && path == "/messages":
			r.handleThread(w, req, user)
		case req.Method == http.MethodPost && path == "/messages":
			r.handleSendMessage(w, req, user)
		case req.Method == http.MethodGet && path == "/profile":
			r.handleGetProfile(w, req, user)
		case req.Method == http.MethodPatch && path == "/profile":
			r.handleUpdateProfile(w, req)
		case req.Method == http.MethodGet && path == "/verifications":
			r.handleListVerifications(w, req, user)
		case req.Method == http.MethodPost && strings.HasPrefix(path, "/verifications/") && strings.HasSuffix(path, "/approve"):
			r.handleApproveVerification(w, req, user)
		default:
			http.NotFound(w, req)
		}
	})
}

// idFromPath достаёт сегмент пути: /postings/{id}/status -> id
func idFromPath(path string, index int) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if index < 0 || index >= len(parts) {
		return ""
	}
	return parts[index]
}
