package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/incident_reporting_system/internal/models"
	"github.com/shenikar/incident_reporting_system/internal/service"
)

const (
	userContextKey  = "user"
	tokenContextKey = "token"
)

// bearerToken извлекает токен из заголовка Authorization: Bearer
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// currentUser возвращает пользователя, определенного middleware, или nil
func currentUser(c *gin.Context) *models.User {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}

// RequireAuth - middleware, пропускающее только запросы с действующим токеном
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.logger.WithField("middleware", "RequireAuth")
		token := bearerToken(c)

		user, err := h.authService.RequireUser(c.Request.Context(), token)
		if err != nil {
			respondError(c, log, err)
			return
		}

		c.Set(userContextKey, user)
		c.Set(tokenContextKey, token)
		c.Next()
	}
}

// OptionalAuth - middleware, определяющее пользователя, если токен есть и действителен.
// Запрос без токена или с недействительным токеном обрабатывается как анонимный.
func (h *Handler) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := h.authService.OptionalUser(c.Request.Context(), bearerToken(c)); user != nil {
			c.Set(userContextKey, user)
		}
		c.Next()
	}
}

// RequireAdmin - middleware, пропускающее только администратора. Ставится после RequireAuth.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := service.RequireAdmin(currentUser(c)); err != nil {
			respondError(c, h.logger.WithField("middleware", "RequireAdmin"), err)
			return
		}
		c.Next()
	}
}

// @Summary Register a new user
// @Description Create a citizen account and return an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or email already registered"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.authService.Register(c.Request.Context(), input.toModel())
	if err != nil {
		respondError(c, log, err, statusOverride{kind: models.ErrConflict, status: http.StatusBadRequest})
		return
	}
	c.JSON(http.StatusOK, SessionToResponse(session))
}

// @Summary Log in
// @Description Exchange email and password for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid email or password"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, SessionToResponse(session))
}

// @Summary Current user
// @Description Get the authenticated user
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /auth/me [get]
func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, UserToResponse(currentUser(c)))
}

// @Summary Log out
// @Description Revoke the current access token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OKResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Router /auth/logout [post]
func (h *Handler) logout(c *gin.Context) {
	log := h.logger.WithField("method", "logout")

	if err := h.authService.Logout(c.Request.Context(), c.GetString(tokenContextKey)); err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// @Summary Bootstrap the first admin
// @Description Create the single administrator account. Fails once an admin exists.
// @Tags Admin
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Admin registration request"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} ErrorResponse "Invalid request body or email already registered"
// @Failure 403 {object} ErrorResponse "Admin already bootstrapped"
// @Failure 429 {object} ErrorResponse "Too many requests"
// @Router /admin/bootstrap [post]
func (h *Handler) bootstrapAdmin(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "bootstrapAdmin")

	// После создания администратора отказ не зависит от тела запроса
	if err := h.authService.BootstrapAllowed(c.Request.Context()); err != nil {
		respondError(c, log, err)
		return
	}

	if !h.bindJSON(c, log, &input) {
		return
	}

	session, err := h.authService.Bootstrap(c.Request.Context(), input.toModel())
	if err != nil {
		respondError(c, log, err, statusOverride{kind: models.ErrConflict, status: http.StatusBadRequest})
		return
	}
	c.JSON(http.StatusOK, SessionToResponse(session))
}
