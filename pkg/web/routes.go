// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/world-compute/LinuxBotGo/pkg/discord"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	s.GET("/health", healthHandler)

	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/bot", botInfoHandler)
	}
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Linux-BOT is running",
	})
}

// statusHandler returns the bot status
func statusHandler(c *gin.Context) {
	client := discord.Get()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"commands":      client.Commands.Size(),
		"warnedUsers":   client.Warns.TotalUsers(),
		"uptimeSeconds": int64(client.Uptime().Seconds()),
		"isReady":       client.IsReady(),
	})
}
