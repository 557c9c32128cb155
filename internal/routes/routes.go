package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/promptdeck/promptdeck-backend/internal/handler"
	"github.com/promptdeck/promptdeck-backend/internal/middleware"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
	"github.com/promptdeck/promptdeck-backend/pkg/cache"
	"github.com/promptdeck/promptdeck-backend/pkg/jwt"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler wired by Setup
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Prompt   *handler.PromptHandler
	Guide    *handler.GuideHandler
	Agent    *handler.AgentHandler
	Ruleset  *handler.RulesetHandler
	Proposal *handler.ProposalHandler
}

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	h Handlers,
	jwtManager *jwt.Manager,
	userRepo repository.UserRepository,
	cacheService cache.Service,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	authRequired := middleware.JWTAuth(jwtManager, userRepo)
	authOptional := middleware.OptionalJWTAuth(jwtManager, userRepo)
	moderator := middleware.RequireModerator()
	admin := middleware.RequireAdmin()

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.GET("/me", authRequired, h.Auth.Me)

	prompts := api.Group("/prompts")
	{
		prompts.GET("", authOptional, middleware.CachePublic(cacheService, cache.PrefixPrompts, cache.TTLCatalog), h.Prompt.ListPrompts)
		prompts.GET("/:id", authOptional, h.Prompt.GetPrompt)
		prompts.POST("", authRequired, h.Prompt.CreatePrompt)
		prompts.PATCH("/:id", authRequired, h.Prompt.UpdatePrompt)
		prompts.PATCH("/:id/status", authRequired, h.Prompt.UpdatePromptStatus)
		prompts.DELETE("/:id", authRequired, h.Prompt.DeletePrompt)
		prompts.POST("/:id/restore", authRequired, moderator, h.Prompt.RestorePrompt)
		prompts.GET("/moderation/pending", authRequired, moderator, h.Prompt.ListPendingPrompts)
	}

	guides := api.Group("/guides")
	{
		guides.GET("", authOptional, middleware.CachePublic(cacheService, cache.PrefixGuides, cache.TTLCatalog), h.Guide.ListGuides)
		guides.GET("/:id", authOptional, h.Guide.GetGuide)
		guides.POST("", authRequired, h.Guide.CreateGuide)
		guides.PATCH("/:id", authRequired, h.Guide.UpdateGuide)
		guides.PATCH("/:id/status", authRequired, h.Guide.UpdateGuideStatus)
		guides.DELETE("/:id", authRequired, h.Guide.DeleteGuide)
		guides.POST("/:id/restore", authRequired, moderator, h.Guide.RestoreGuide)
		guides.GET("/moderation/pending", authRequired, moderator, h.Guide.ListPendingGuides)
	}

	agents := api.Group("/agents")
	{
		agents.GET("", authOptional, middleware.CachePublic(cacheService, cache.PrefixAgents, cache.TTLCatalog), h.Agent.ListAgents)
		agents.GET("/:id", authOptional, h.Agent.GetAgent)
		agents.POST("", authRequired, h.Agent.CreateAgent)
		agents.PATCH("/:id", authRequired, h.Agent.UpdateAgent)
		agents.PATCH("/:id/status", authRequired, h.Agent.UpdateAgentStatus)
		agents.PATCH("/:id/content-status", authRequired, h.Agent.UpdateAgentContentStatus)
		agents.DELETE("/:id", authRequired, h.Agent.DeleteAgent)
		agents.POST("/:id/restore", authRequired, moderator, h.Agent.RestoreAgent)
		agents.GET("/moderation/pending", authRequired, moderator, h.Agent.ListPendingAgents)
	}

	rulesets := api.Group("/rulesets")
	{
		rulesets.GET("", authOptional, middleware.CachePublic(cacheService, cache.PrefixRulesets, cache.TTLCatalog), h.Ruleset.ListRulesets)
		rulesets.GET("/:id", authOptional, h.Ruleset.GetRuleset)
		rulesets.POST("", authRequired, h.Ruleset.CreateRuleset)
		rulesets.PATCH("/:id", authRequired, h.Ruleset.UpdateRuleset)
		rulesets.PATCH("/:id/status", authRequired, h.Ruleset.UpdateRulesetStatus)
		rulesets.DELETE("/:id", authRequired, h.Ruleset.DeleteRuleset)
		rulesets.POST("/:id/restore", authRequired, moderator, h.Ruleset.RestoreRuleset)
		rulesets.GET("/moderation/pending", authRequired, moderator, h.Ruleset.ListPendingRulesets)
	}

	proposals := api.Group("/proposals")
	{
		proposals.POST("", h.Proposal.CreateProposal)
		proposals.GET("", authRequired, moderator, h.Proposal.ListProposals)
		proposals.GET("/:id", authRequired, moderator, h.Proposal.GetProposal)
		proposals.PATCH("/:id/status", authRequired, moderator, h.Proposal.UpdateProposalStatus)
		proposals.DELETE("/:id", authRequired, moderator, h.Proposal.DeleteProposal)
		proposals.POST("/:id/restore", authRequired, moderator, h.Proposal.RestoreProposal)
	}

	users := api.Group("/users", authRequired, admin)
	{
		users.GET("", h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.POST("", h.User.CreateUser)
		users.PATCH("/:id", h.User.UpdateUser)
		users.DELETE("/:id", h.User.DeleteUser)
		users.POST("/:id/restore", h.User.RestoreUser)
	}
}
