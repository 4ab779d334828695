package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Register a new user
// @Description Create a USER account and return an access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.requestLog(c, "register")
	if !h.bind(c, log, &input) {
		return
	}

	pair, err := h.userService.Register(c.Request.Context(), input.FullName, input.Email, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, TokenPairToAuthResponse(pair))
}

// @Summary Authenticate
// @Description Exchange email and password for an access/refresh token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body AuthenticateRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/authenticate [post]
func (h *Handler) authenticate(c *gin.Context) {
	var input AuthenticateRequest
	log := h.requestLog(c, "authenticate")
	if !h.bind(c, log, &input) {
		return
	}

	pair, err := h.userService.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TokenPairToAuthResponse(pair))
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body RefreshRequest true "Refresh token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid or expired token"
// @Router /auth/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	var input RefreshRequest
	log := h.requestLog(c, "refresh")
	if !h.bind(c, log, &input) {
		return
	}

	pair, err := h.userService.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, TokenPairToAuthResponse(pair))
}

// @Summary Current user
// @Description Get the user that owns the bearer token.
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/me [get]
func (h *Handler) me(c *gin.Context) {
	c.JSON(http.StatusOK, ModelToUserResponse(currentUser(c)))
}
