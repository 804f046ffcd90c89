package routes

import (
	"fooddelivery/controllers"
	"fooddelivery/middleware"
	"fooddelivery/models"
	"fooddelivery/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

type Services struct {
	Identity *services.IdentityService
	Admins   *services.AdminService
	Sessions *services.SessionService
	Cart     *services.CartService
	Orders   *services.OrderService
	Feedback *services.FeedbackService
	Menu     *services.MenuService
}

type Options struct {
	Log        zerolog.Logger
	Cookie     middleware.SessionCookie
	CORSOrigin string
	Store      controllers.Pinger
	Ready      *atomic.Bool
}

// NewRouter builds the engine with the global middleware and every route.
func NewRouter(svc Services, opts Options) *gin.Engine {
	controllers.RegisterValidators()

	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	r.Use(gin.Recovery(), middleware.RequestLogger(opts.Log), middleware.CORS(opts.CORSOrigin))
	r.NoRoute(controllers.NotFound)

	RegisterRoutes(r, svc, opts)
	return r
}

func RegisterRoutes(r *gin.Engine, svc Services, opts Options) {
	auth := controllers.NewAuthController(svc.Identity, svc.Admins, svc.Sessions, opts.Cookie)
	users := controllers.NewUserController(svc.Identity)
	cart := controllers.NewCartController(svc.Cart)
	orders := controllers.NewOrderController(svc.Orders)
	feedback := controllers.NewFeedbackController(svc.Feedback)
	menu := controllers.NewMenuController(svc.Menu)
	health := controllers.NewHealthController(opts.Store, opts.Ready)

	r.GET("/", health.Root)
	r.GET("/livez", health.Livez)
	r.GET("/readyz", health.Readyz)

	r.POST("/users", auth.Register)
	r.POST("/users/login", auth.Login)
	r.POST("/users/logout", auth.Logout)
	r.POST("/admin/login", auth.AdminLogin)
	r.POST("/clearCookie/:title", auth.ClearCookie)

	r.POST("/feedback", feedback.Submit)
	r.GET("/menu", menu.GetMenuPublic)

	protected := r.Group("/")
	protected.Use(middleware.SessionAuth(svc.Sessions, opts.Cookie))
	{
		protected.GET("/user/fetch", users.FetchProfile)

		protected.POST("/cart", cart.AddToCart)
		protected.POST("/deleteitem", cart.RemoveFromCart)
		protected.GET("/mycart", cart.GetCart)
		protected.DELETE("/deleteCart", cart.ClearCart)

		protected.POST("/orders", orders.PlaceOrder)
		protected.GET("/orders", orders.GetOrders)
		protected.DELETE("/orders/:orderId", orders.CancelOrder)

		admin := protected.Group("/")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/allusers", users.ListUsers)

			admin.PUT("/orders/:orderId", orders.UpdateOrderStatus)
			admin.GET("/admin/orders", orders.GetOrdersAdmin)
			admin.GET("/admin/orders/:orderId", orders.GetOrderByIDAdmin)
			admin.GET("/api/getTotalShippedOrders", orders.GetTotalShippedOrders)

			admin.GET("/feedback", feedback.List)
			admin.DELETE("/feedback/:id", feedback.Delete)

			admin.GET("/admin/menu", menu.GetMenuAdmin)
			admin.POST("/admin/menu", menu.CreateMenuItem)
			admin.PUT("/admin/menu/:id", menu.UpdateMenuItem)
			admin.DELETE("/admin/menu/:id", menu.DeleteMenuItem)
		}
	}
}
