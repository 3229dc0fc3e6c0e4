package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"thoughts-api/internal/domain"
	"thoughts-api/internal/observability"
	"thoughts-api/internal/service"
)

// Stable client-facing messages. Internal error details are logged, never
// forwarded to the caller.
const (
	msgPasswordTooShort = "Password must be at least 10 characters long"
	msgRegisterFailed   = "Could not register user"
	msgBadCredentials   = "Credentials did not match. Please make sure you entered the correct username and password and try again."
	msgMessageRequired  = "Message is required"
	msgBadRequest       = "Could not process request"
	msgStoreFault       = "Something went wrong, please try again later"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users    service.UserService
	thoughts service.ThoughtService
	metrics  *observability.Metrics
	logger   *logrus.Logger
}

func NewHandler(users service.UserService, thoughts service.ThoughtService, metrics *observability.Metrics, logger *logrus.Logger) *Handler {
	return &Handler{
		users:    users,
		thoughts: thoughts,
		metrics:  metrics,
		logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())
	router.Use(metricsMiddleware(h.metrics))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Thoughts Authentication API")
	})
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/register", h.register)
	router.POST("/login", h.login)

	protected := router.Group("/")
	protected.Use(h.authenticateUser())
	{
		protected.GET("/thoughts", h.listThoughts)
		protected.POST("/thoughts", h.createThought)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type createThoughtRequest struct {
	Message string `json:"message"`
}

func (h *Handler) register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgBadRequest)
		return
	}

	user, err := h.users.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, msgPasswordTooShort)
		case errors.Is(err, service.ErrUsernameRequired),
			errors.Is(err, service.ErrUserAlreadyExists):
			// A duplicate username is deliberately indistinguishable from
			// any other registration failure.
			respondError(c, http.StatusBadRequest, msgRegisterFailed)
		default:
			h.logger.WithError(err).Error("register user")
			respondError(c, http.StatusBadRequest, msgRegisterFailed)
		}
		return
	}

	h.metrics.UsersRegisteredTotal.Inc()
	respond(c, http.StatusCreated, gin.H{
		"username":    user.Username,
		"accessToken": user.AccessToken,
		"id":          user.ID,
	})
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgBadCredentials)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusBadRequest, msgBadCredentials)
			return
		}
		h.logger.WithError(err).Error("login lookup")
		respondError(c, http.StatusInternalServerError, msgStoreFault)
		return
	}

	respond(c, http.StatusOK, gin.H{
		"username":    user.Username,
		"id":          user.ID,
		"accessToken": user.AccessToken,
	})
}

func (h *Handler) listThoughts(c *gin.Context) {
	thoughts, err := h.thoughts.ListThoughts(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("list thoughts")
		respondError(c, http.StatusInternalServerError, msgStoreFault)
		return
	}

	resp := make([]ThoughtResponse, len(thoughts))
	for i := range thoughts {
		resp[i] = thoughtToResponse(thoughts[i])
	}
	respond(c, http.StatusOK, resp)
}

func (h *Handler) createThought(c *gin.Context) {
	var req createThoughtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, msgMessageRequired)
		return
	}

	thought, err := h.thoughts.CreateThought(c.Request.Context(), req.Message)
	if err != nil {
		if errors.Is(err, service.ErrMessageRequired) {
			respondError(c, http.StatusBadRequest, msgMessageRequired)
			return
		}
		h.logger.WithError(err).Error("create thought")
		respondError(c, http.StatusInternalServerError, msgStoreFault)
		return
	}

	if user, ok := currentUser(c); ok {
		h.logger.WithField("username", user.Username).Debug("thought posted")
	}

	h.metrics.ThoughtsCreatedTotal.Inc()
	respond(c, http.StatusCreated, thoughtToResponse(*thought))
}

// ThoughtResponse is the wire form of a thought.
type ThoughtResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Hearts    int    `json:"hearts"`
	CreatedAt string `json:"createdAt"`
}

func thoughtToResponse(thought domain.Thought) ThoughtResponse {
	return ThoughtResponse{
		ID:        thought.ID,
		Message:   thought.Message,
		Hearts:    thought.Hearts,
		CreatedAt: thought.CreatedAt.Format(time.RFC3339),
	}
}

func respond(c *gin.Context, status int, payload any) {
	c.JSON(status, gin.H{"success": true, "response": payload})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "response": message})
}
