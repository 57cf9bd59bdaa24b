package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/markjakearzadon/influencehub-gobackend/internal/auth"
	"github.com/markjakearzadon/influencehub-gobackend/internal/models"
	"github.com/markjakearzadon/influencehub-gobackend/internal/services"
)

// Deps is everything the HTTP layer needs.
type Deps struct {
	Logger     *zap.Logger
	Production bool
	UploadDir  string

	Sessions *auth.Manager
	States   auth.StateStore
	Google   *auth.GoogleProvider

	Users         *services.UserService
	Auth          *services.AuthService
	Campaigns     *services.CampaignService
	Notifications *services.NotificationService
	Influencers   *services.InfluencerService
	Matching      *services.MatchingService
}

func NewRouter(d Deps) *mux.Router {
	mw := &middleware{
		base:     base{logger: d.Logger, production: d.Production},
		sessions: d.Sessions,
		users:    d.Users,
	}

	authHandler := NewAuthHandler(d.Auth, d.Sessions, d.States, d.Google, d.Logger, d.Production)
	userHandler := NewUserHandler(d.Users, d.Logger, d.Production)
	campaignHandler := NewCampaignHandler(d.Campaigns, d.UploadDir, d.Logger, d.Production)
	notificationHandler := NewNotificationHandler(d.Notifications, d.Logger, d.Production)
	influencerHandler := NewInfluencerHandler(d.Influencers, d.Logger, d.Production)
	aiHandler := NewAIHandler(d.Matching, d.Logger, d.Production)

	router := mux.NewRouter()
	router.Use(requestIDMiddleware, mw.recoverer, mw.logging)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet, http.MethodHead)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.PathPrefix(uploadURLPrefix).
		Handler(http.StripPrefix(uploadURLPrefix, http.FileServer(http.Dir(d.UploadDir)))).
		Methods(http.MethodGet, http.MethodHead)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(mw.loadSession)

	authed := mw.requireAuth
	brands := mw.authorizeRoles(models.RoleAdmin, models.RoleUser)

	// auth
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/google", authHandler.GoogleStart).Methods(http.MethodGet)
	api.HandleFunc("/auth/google/callback", authHandler.GoogleCallback).Methods(http.MethodGet)
	api.HandleFunc("/auth/success", authHandler.Success).Methods(http.MethodGet)
	api.HandleFunc("/auth/failure", authHandler.Failure).Methods(http.MethodGet)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// user
	api.HandleFunc("/user/create", userHandler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/user/me", userHandler.Me).Methods(http.MethodGet)
	api.HandleFunc("/user/update", userHandler.UpdateMe).Methods(http.MethodPatch)

	// campaigns
	api.Handle("/campaigns/create", chain(campaignHandler.CreateCampaign, authed, brands)).Methods(http.MethodPost)
	api.Handle("/campaigns/all", chain(campaignHandler.GetCampaigns, authed)).Methods(http.MethodGet)
	api.Handle("/campaigns/campaign/{id}", chain(campaignHandler.GetCampaign, authed)).Methods(http.MethodGet)
	api.Handle("/campaigns/campaign/{id}", chain(campaignHandler.UpdateCampaign, authed, brands)).Methods(http.MethodPatch)
	api.Handle("/campaigns/campaign/{id}", chain(campaignHandler.DeleteCampaign, authed, brands)).Methods(http.MethodDelete)

	// notifications
	api.Handle("/notifications", chain(notificationHandler.GetNotifications, authed)).Methods(http.MethodGet)
	api.Handle("/notifications/mark-all-read", chain(notificationHandler.MarkAllAsRead, authed)).Methods(http.MethodPut)
	api.Handle("/notifications/{id}/read", chain(notificationHandler.MarkAsRead, authed)).Methods(http.MethodPut)
	api.Handle("/notifications/{id}", chain(notificationHandler.DeleteNotification, authed)).Methods(http.MethodDelete)

	// influencers
	api.HandleFunc("/influencers/influencer/onboard", influencerHandler.Onboard).Methods(http.MethodPost)
	api.HandleFunc("/influencers/all", influencerHandler.GetInfluencers).Methods(http.MethodGet)
	api.HandleFunc("/influencers/influencer/{id}", influencerHandler.GetInfluencer).Methods(http.MethodGet)

	// ai
	api.Handle("/ai/influencer-match", chain(aiHandler.MatchInfluencers, authed, brands)).Methods(http.MethodPost)
	api.HandleFunc("/ai/agent-call", aiHandler.AgentCall).Methods(http.MethodPost)

	return router
}
