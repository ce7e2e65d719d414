package routes

import (
	"healthtracker/controllers"
	"healthtracker/middlewares"
	"healthtracker/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	profileSvc := services.NewProfileService(db)
	weightSvc := services.NewWeightService(db, profileSvc)
	foodSvc := services.NewFoodService(db)
	historySvc := services.NewHistoryService(db)
	sessionSvc := services.NewSessionService(profileSvc, weightSvc, foodSvc)
	authSvc := services.NewAuthService(db)

	authCtl := controllers.NewAuthController(authSvc)
	profileCtl := controllers.NewProfileController(profileSvc)
	weightCtl := controllers.NewWeightController(weightSvc, historySvc)
	foodCtl := controllers.NewFoodController(foodSvc, historySvc)
	metricsCtl := controllers.NewMetricsController(profileSvc)
	historyCtl := controllers.NewHistoryController(historySvc)
	sessionCtl := controllers.NewSessionController(sessionSvc)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", profileCtl.GetProfile)
		user.PUT("/profile", profileCtl.UpdateProfile)
		user.GET("/session", sessionCtl.GetSession)
	}

	// Protected tracker routes
	tracker := r.Group("/tracker")
	tracker.Use(middlewares.AuthMiddleware())
	{
		tracker.POST("/weight", weightCtl.LogWeight)
		tracker.GET("/weight/history", weightCtl.GetHistory)
		tracker.POST("/food", foodCtl.AddFood)
		tracker.GET("/food", foodCtl.GetFoodLog)
		tracker.GET("/metabolism", metricsCtl.GetMetabolism)
		tracker.GET("/comparison", historyCtl.GetComparison)
	}

	return r
}
