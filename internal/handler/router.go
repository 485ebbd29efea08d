package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"course-market/internal/handler/api"
	"course-market/internal/handler/middleware"
	"course-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	offeringHandler *api.OfferingHandler,
	enrollmentHandler *api.EnrollmentHandler,
	checkoutHandler *api.CheckoutHandler,
	couponHandler *api.CouponHandler,
	referralHandler *api.ReferralHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, offeringHandler, enrollmentHandler, checkoutHandler, couponHandler, referralHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	offeringHandler *api.OfferingHandler,
	enrollmentHandler *api.EnrollmentHandler,
	checkoutHandler *api.CheckoutHandler,
	couponHandler *api.CouponHandler,
	referralHandler *api.ReferralHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/signup", Handler: authHandler.Signup},
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		offerings := apiGroup.Group("/offerings")
		{
			addRoutes(offerings, []route{
				{Method: http.MethodGet, Path: "", Handler: offeringHandler.ListOfferings},
				{Method: http.MethodGet, Path: "/:id", Handler: offeringHandler.GetOffering},
			})

			offeringsAuth := offerings.Group("")
			offeringsAuth.Use(authMiddleware.RequireAuth())
			addRoutes(offeringsAuth, []route{
				{Method: http.MethodPost, Path: "", Handler: offeringHandler.CreateOffering, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
				{Method: http.MethodPost, Path: "/:id/enroll", Handler: enrollmentHandler.Enroll},
				{Method: http.MethodGet, Path: "/:id/waitlist", Handler: enrollmentHandler.GetWaitlistPosition},
			})
		}

		checkout := apiGroup.Group("/checkout")
		checkout.Use(authMiddleware.RequireAuth())
		{
			addRoutes(checkout, []route{
				{Method: http.MethodPost, Path: "", Handler: checkoutHandler.Checkout},
			})
		}

		enrollments := apiGroup.Group("/enrollments")
		enrollments.Use(authMiddleware.RequireAuth())
		{
			addRoutes(enrollments, []route{
				{Method: http.MethodGet, Path: "", Handler: enrollmentHandler.GetUserEnrollments},
			})
		}

		coupons := apiGroup.Group("/coupons")
		coupons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "", Handler: couponHandler.CreateCoupon, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
				{Method: http.MethodGet, Path: "/:code/validate", Handler: couponHandler.ValidateCoupon},
			})
		}

		referrals := apiGroup.Group("/referrals")
		referrals.Use(authMiddleware.RequireAuth())
		{
			addRoutes(referrals, []route{
				{Method: http.MethodGet, Path: "/me", Handler: referralHandler.GetReferralSummary},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
