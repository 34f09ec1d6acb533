package router

import (
	"html/template"
	"os"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/naratorn/table-order-app/controllers"
	"github.com/naratorn/table-order-app/middlewares"
	"github.com/naratorn/table-order-app/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.SetFuncMap(template.FuncMap{
		"baht": utils.FormatBaht,
	})
	r.LoadHTMLGlob("templates/*.html")

	// Cookie sessions carry the flash notices between redirect and render.
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "table-order-dev-session"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("table_order_session", store))

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	tableCtrl := controllers.NewTableController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)
	userCtrl := controllers.NewUserController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      CUSTOMER / STAFF PAGES
	// ----------------------------------------------------------------
	r.GET("/", tableCtrl.Home)
	r.GET("/menu/:table_id", menuCtrl.BrowseMenu)

	// Mutating pages are POST only; a GET on the same path redirects back
	// without doing anything.
	r.POST("/add-to-order/:table_id/:item_id", orderCtrl.AddToOrder)
	r.GET("/add-to-order/:table_id/:item_id", orderCtrl.AddToOrderRedirect)

	r.GET("/order/:order_id", orderCtrl.ViewOrder)
	r.POST("/order/:order_id/update-status", orderCtrl.UpdateOrderStatus)
	r.GET("/order/:order_id/update-status", orderCtrl.UpdateOrderStatusRedirect)

	r.GET("/all-orders", orderCtrl.AllOrders)

	r.POST("/delete-item/:item_id", orderCtrl.DeleteOrderItem)
	r.GET("/delete-item/:item_id", orderCtrl.DeleteOrderItemRedirect)

	// ----------------------------------------------------------------
	//                      AUTH
	// ----------------------------------------------------------------
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      BACK OFFICE (JSON, JWT)
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/users", userCtrl.GetAllUsers)

	// TABLES
	auth.GET("/tables", tableCtrl.GetAllTables)
	auth.POST("/tables", tableCtrl.CreateTable)
	auth.GET("/tables/:table_id", tableCtrl.GetTableByID)
	auth.PATCH("/tables/:table_id", tableCtrl.UpdateTableStatus)
	auth.DELETE("/tables/:table_id", tableCtrl.DeleteTable)

	// MENU CATEGORIES
	auth.GET("/categories", categoryCtrl.GetAllCategories)
	auth.POST("/categories", categoryCtrl.CreateCategory)
	auth.GET("/categories/:cat_id", categoryCtrl.GetCategoryByID)
	auth.PATCH("/categories/:cat_id", categoryCtrl.UpdateCategory)
	auth.DELETE("/categories/:cat_id", categoryCtrl.DeleteCategory)

	// MENU ITEMS
	auth.GET("/menu-items", menuCtrl.GetAllMenuItems)
	auth.POST("/menu-items", menuCtrl.CreateMenuItem)
	auth.GET("/menu-items/:item_id", menuCtrl.GetMenuItemByID)
	auth.PATCH("/menu-items/:item_id", menuCtrl.UpdateMenuItem)
	auth.DELETE("/menu-items/:item_id", menuCtrl.DeleteMenuItem)

	// ORDERS
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PATCH("/orders/:order_id", orderCtrl.UpdateOrder)
	auth.DELETE("/orders/:order_id", orderCtrl.DeleteOrder)
	auth.DELETE("/order-items/:item_id", orderCtrl.AdminDeleteOrderItem)

	return r
}
