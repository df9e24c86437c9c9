package route

import (
	"github.com/gin-gonic/gin"

	"kitchenops/controller"
	"kitchenops/db"
	"kitchenops/entity"
	"kitchenops/handler"
	"kitchenops/middleware"
	"kitchenops/repository"
	"kitchenops/service"
)

func SetupRoutes(r *gin.Engine, config *entity.Config) error {

	if err := db.InitDB(config); err != nil {
		return err
	}
	gormDbInstance := db.GetDBInstance()
	if err := db.Migrate(); err != nil {
		return err
	}

	ingredientRepository := repository.NewIngredientRepository(gormDbInstance)
	recipeTypeRepository := repository.NewRecipeTypeRepository(gormDbInstance)
	recipeRepository := repository.NewRecipeRepository(gormDbInstance)
	orderRepository := repository.NewOrderRepository(gormDbInstance)
	summaryRepository := repository.NewSummaryRepository(gormDbInstance)
	userRepository := repository.NewUserRepository(gormDbInstance)
	permissionRepository := repository.NewPermissionRepository(gormDbInstance)

	ingredientController := controller.NewIngredientController(ingredientRepository)
	recipeTypeController := controller.NewRecipeTypeController(recipeTypeRepository)
	recipeController := controller.NewRecipeController(recipeRepository, recipeTypeRepository)
	orderController := controller.NewOrderController(orderRepository)
	summaryController := controller.NewSummaryController(summaryRepository)
	userController := controller.NewUserController(userRepository, permissionRepository)
	statsController := controller.NewStatsController(ingredientRepository, recipeRepository, recipeTypeRepository, orderRepository)

	authService := service.NewAuthService(userRepository, config)

	authHandler := handler.NewAuthHandler(authService)
	ingredientHandler := handler.NewIngredientHandler(ingredientController)
	recipeTypeHandler := handler.NewRecipeTypeHandler(recipeTypeController)
	recipeHandler := handler.NewRecipeHandler(recipeController)
	orderHandler := handler.NewOrderHandler(orderController)
	summaryHandler := handler.NewSummaryHandler(summaryController)
	userHandler := handler.NewUserHandler(userController)
	dashboardHandler := handler.NewDashboardHandler(statsController)

	publicRoutes := r.Group("/")
	publicRoutes.POST("/auth/login", authHandler.Login)

	protectedRoutes := r.Group("/")
	protectedRoutes.Use(middleware.AuthenticateJWT(config))

	protectedRoutes.GET("/auth/me", authHandler.Me)
	protectedRoutes.GET("/dashboard/stats", dashboardHandler.Stats)

	authorize := func(resource, action string) gin.HandlerFunc {
		return middleware.Authorize(permissionRepository, resource, action)
	}

	protectedRoutes.GET("/ingredients", ingredientHandler.List)
	protectedRoutes.POST("/ingredients", authorize("ingredients", "create"), ingredientHandler.Create)
	protectedRoutes.PUT("/ingredients/:id", authorize("ingredients", "update"), ingredientHandler.Update)
	protectedRoutes.DELETE("/ingredients/:id", authorize("ingredients", "delete"), ingredientHandler.Delete)

	protectedRoutes.GET("/recipe-types", recipeTypeHandler.List)
	protectedRoutes.POST("/recipe-types", authorize("recipe_types", "create"), recipeTypeHandler.Create)
	protectedRoutes.PUT("/recipe-types/:id", authorize("recipe_types", "update"), recipeTypeHandler.Update)
	protectedRoutes.DELETE("/recipe-types/:id", authorize("recipe_types", "delete"), recipeTypeHandler.Delete)

	protectedRoutes.GET("/recipes/lines", recipeHandler.ListLines)
	protectedRoutes.GET("/recipes", recipeHandler.ListGrouped)
	protectedRoutes.GET("/recipes/names", recipeHandler.Names)
	protectedRoutes.POST("/recipes", authorize("recipes", "create"), recipeHandler.Save)
	protectedRoutes.PUT("/recipes/:name", authorize("recipes", "update"), recipeHandler.Save)
	protectedRoutes.DELETE("/recipes/:name", authorize("recipes", "delete"), recipeHandler.Delete)

	protectedRoutes.GET("/orders", orderHandler.List)
	protectedRoutes.GET("/orders/export.csv", orderHandler.Export)
	protectedRoutes.POST("/orders", authorize("order_items", "create"), orderHandler.Create)
	protectedRoutes.PUT("/orders/:id", authorize("order_items", "update"), orderHandler.Update)
	protectedRoutes.DELETE("/orders/:id", authorize("order_items", "delete"), orderHandler.Delete)

	protectedRoutes.GET("/summary", summaryHandler.List)
	protectedRoutes.GET("/summary/export.csv", summaryHandler.Export)

	adminRoutes := r.Group("/")
	adminRoutes.Use(middleware.AuthenticateJWT(config), middleware.RequireAdmin())
	adminRoutes.GET("/users", userHandler.List)
	adminRoutes.POST("/users", userHandler.Create)
	adminRoutes.PUT("/users/:id/role", userHandler.SetRole)
	adminRoutes.GET("/users/:id/permissions", userHandler.ListPermissions)
	adminRoutes.POST("/users/:id/permissions", userHandler.Grant)
	adminRoutes.DELETE("/permissions/:id", userHandler.Revoke)

	return nil
}
