package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Register an account
// @Description Create a new user account. Open endpoint, no token required.
// @Tags Users
// @Accept json
// @Produce json
// @Param user body RegisterUserRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email or username already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [post]
func (h *Handler) registerUser(c *gin.Context) {
	var input RegisterUserRequest
	log := h.logger.WithField("method", "registerUser")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := toUserModel(&input)
	if err := h.userService.CreateUser(c.Request.Context(), user, input.Password); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(user))
}

// @Summary Get own account
// @Description Get the authenticated user's account.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /users/me [get]
func (h *Handler) getCurrentUser(c *gin.Context) {
	c.JSON(http.StatusOK, toUserResponse(currentUser(c)))
}

// @Summary Update own account
// @Description Partially update the authenticated user's account. Absent fields are left untouched.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UpdateUserRequest true "Account update request"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Email or username already taken"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/me [put]
func (h *Handler) updateCurrentUser(c *gin.Context) {
	user := currentUser(c)
	var input UpdateUserRequest
	log := h.logger.WithField("method", "updateCurrentUser").WithField("user_id", user.ID)

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.userService.UpdateUser(c.Request.Context(), user.ID, toUserUpdate(&input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(updated))
}

// @Summary List accounts
// @Description List all user accounts. Requires superuser privilege.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Page size" default(10)
// @Success 200 {array} UserResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users [get]
func (h *Handler) listUsers(c *gin.Context) {
	log := h.logger.WithField("method", "listUsers")
	skip, limit := parsePagination(c)

	users, err := h.userService.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponses(users))
}

// @Summary Get account by ID
// @Description Get any user account by ID. Requires superuser privilege.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [get]
func (h *Handler) getUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "getUser").WithField("id", id)

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// @Summary Delete an account
// @Description Delete a user account with its alerts and saved regions. Requires superuser privilege.
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid user ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{id} [delete]
func (h *Handler) deleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	log := h.logger.WithField("method", "deleteUser").WithField("id", id)

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
