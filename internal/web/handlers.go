package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"vip_gate_bot/internal/config"
	"vip_gate_bot/internal/service"
)

type WebHandlers struct {
	userService service.UserService
	config      *config.Config
}

func NewWebHandlers(userService service.UserService, config *config.Config) *WebHandlers {
	return &WebHandlers{
		userService: userService,
		config:      config,
	}
}

// AdminAuthMiddleware accepts only requests carrying the configured admin id
// in the X-Admin-ID header.
func (h *WebHandlers) AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		adminID, err := strconv.ParseInt(c.GetHeader("X-Admin-ID"), 10, 64)
		if err != nil || adminID != h.config.AdminID {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func (h *WebHandlers) GetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *WebHandlers) SetVIP(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req struct {
		IsVIP bool `json:"is_vip"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.IsVIP {
		err = h.userService.GrantVIP(id)
	} else {
		err = h.userService.RevokeVIP(id)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update vip flag"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WebHandlers) GetStats(c *gin.Context) {
	stats, err := h.userService.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
