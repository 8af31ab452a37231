package server

import (
	"net/http"

	"renobudget/internal/config"
	"renobudget/internal/handlers"
	"renobudget/internal/middleware"
	"renobudget/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	secret := []byte(cfg.JWTSecret)

	users := repository.NewUsers(db)
	sessions := repository.NewSessions(db)
	projects := repository.NewProjects(db)
	rooms := repository.NewRooms(db)
	vendors := repository.NewVendors(db)
	items := repository.NewBudgetItems(db)
	details := repository.NewBudgetDetails(db)
	timeline := repository.NewTimeline(db)
	categories := repository.NewCategories(db)
	summary := repository.NewSummary(db)
	activity := repository.NewActivity(db)

	authH := handlers.NewAuth(users, sessions, secret)
	projectH := handlers.NewProjects(projects, summary, activity)
	roomH := handlers.NewRooms(projects, rooms, activity)
	vendorH := handlers.NewVendors(projects, vendors, activity)
	itemH := handlers.NewBudgetItems(projects, items, rooms, activity)
	detailH := handlers.NewBudgetDetails(projects, items, details)
	timelineH := handlers.NewTimeline(projects, timeline, activity)
	categoryH := handlers.NewCategories(categories)

	api := r.Group("/api")

	// AUTH
	api.POST("/auth/signup", authH.Signup)
	api.POST("/auth/login", authH.Login)
	api.POST("/auth/logout", authH.Logout)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(db, secret))

	authed.GET("/auth/me", authH.Me)
	authed.GET("/categories", categoryH.List)

	// PROJECTS
	authed.GET("/projects", projectH.List)
	authed.POST("/projects", projectH.Create)

	p := authed.Group("/projects/:id")
	p.GET("", projectH.Get)
	p.PUT("", projectH.Update)
	p.DELETE("", projectH.Delete)
	p.GET("/summary", projectH.Summary)
	p.GET("/activity", projectH.Activity)

	// ROOMS
	p.GET("/rooms", roomH.List)
	p.POST("/rooms", roomH.Create)
	p.PUT("/rooms/reorder", roomH.Reorder)
	p.GET("/rooms/:roomID", roomH.Get)
	p.PUT("/rooms/:roomID", roomH.Update)
	p.DELETE("/rooms/:roomID", roomH.Delete)

	// VENDORS
	p.GET("/vendors", vendorH.List)
	p.POST("/vendors", vendorH.Create)
	p.PUT("/vendors/reorder", vendorH.Reorder)
	p.GET("/vendors/:vendorID", vendorH.Get)
	p.PUT("/vendors/:vendorID", vendorH.Update)
	p.DELETE("/vendors/:vendorID", vendorH.Delete)

	// BUDGET ITEMS
	p.GET("/budget-items", itemH.List)
	p.POST("/budget-items", itemH.Create)
	p.PUT("/budget-items/reorder", itemH.Reorder)
	p.GET("/budget-items/:itemID", itemH.Get)
	p.PUT("/budget-items/:itemID", itemH.Update)
	p.DELETE("/budget-items/:itemID", itemH.Delete)
	p.PUT("/budget-items/:itemID/notes", itemH.UpdateNotes)

	// DETAILS AND ACTUALS
	p.GET("/budget-items/:itemID/details", detailH.List)
	p.POST("/budget-items/:itemID/details", detailH.Create)
	p.PUT("/budget-items/:itemID/details/:detailID", detailH.Update)
	p.DELETE("/budget-items/:itemID/details/:detailID", detailH.Delete)
	p.GET("/budget-items/:itemID/details/:detailID/actuals", detailH.ListActuals)
	p.POST("/budget-items/:itemID/details/:detailID/actuals", detailH.CreateActual)
	p.PUT("/budget-items/:itemID/details/:detailID/actuals/:actualID", detailH.UpdateActual)
	p.DELETE("/budget-items/:itemID/details/:detailID/actuals/:actualID", detailH.DeleteActual)

	// TIMELINE
	p.GET("/timeline", timelineH.List)
	p.POST("/timeline", timelineH.Create)
	p.GET("/timeline/:entryID", timelineH.Get)
	p.PUT("/timeline/:entryID", timelineH.Update)
	p.DELETE("/timeline/:entryID", timelineH.Delete)
	p.GET("/timeline/:entryID/notes", timelineH.ListNotes)
	p.POST("/timeline/:entryID/notes", timelineH.AddNote)
	p.GET("/timeline/:entryID/budget-items", timelineH.ListLinks)
	p.PUT("/timeline/:entryID/budget-items", timelineH.ReplaceLinks)
	p.PUT("/timeline/:entryID/action-plan", timelineH.UpdateActionPlan)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
