package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, s *Server) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/profiles", s.profilesHandler)
		api.GET("/catalog/:locale", s.catalogHandler)
		api.POST("/render", s.renderHandler)
	}
}
