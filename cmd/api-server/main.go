package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	stdsync "sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"tacotango/internal/admin"
	"tacotango/internal/auth"
	"tacotango/internal/bookings"
	"tacotango/internal/dashboard"
	"tacotango/internal/events"
	"tacotango/internal/gallery"
	"tacotango/internal/instagram"
	"tacotango/internal/menu"
	"tacotango/internal/newsletter"
	"tacotango/internal/notify"
	"tacotango/internal/offers"
	"tacotango/internal/store"
	synchub "tacotango/internal/sync"
	"tacotango/internal/testimonials"
	"tacotango/pkg/catalog"
	"tacotango/pkg/database"
	"tacotango/pkg/models"
	"tacotango/pkg/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	dbCfg := database.DefaultConfig()
	db := database.MustOpen(dbCfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	srvCfg := utils.LoadServerConfig()

	router := gin.Default()

	// Optional: avoid “trusted all proxies” warning
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     srvCfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Catalog plumbing: one gateway over sqlite, one cache in front of it,
	// one coordinator for every admin write.
	registry := models.Collections()
	gateway := store.New(db, registry)
	cache := catalog.NewCache(gateway, registry)
	coordinator := catalog.NewCoordinator(gateway, cache, registry)
	projector := catalog.NewProjector(gateway)

	// Start TCP sync first (so you notice binding errors early)
	hub := synchub.NewHub()
	router.GET("/ws", synchub.WSHandler(hub))
	tcpSrv := synchub.NewServer(srvCfg.TCPAddr, hub)
	coordinator.OnEvent(synchub.Broadcaster(hub))

	notifyRegistry := notify.NewRegistry()
	notifySrv := notify.NewServer(srvCfg.UDPAddr, notifyRegistry, nil)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbCfg.Path})
	})

	router.GET("/ready", func(c *gin.Context) {
		stats := hub.Stats()
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":      "not_ready",
				"db_error":    err.Error(),
				"tcp_clients": stats.TCPClients,
				"ws_clients":  stats.WSClients,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":      "ready",
			"db":          "ok",
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	router.GET("/debug", func(c *gin.Context) {
		stats := hub.Stats()
		c.JSON(http.StatusOK, gin.H{
			"db":          dbCfg.Path,
			"tcp_clients": stats.TCPClients,
			"ws_clients":  stats.WSClients,
		})
	})

	// Public site content
	menu.NewHandler(cache).RegisterRoutes(router.Group("/menu"))
	gallery.NewHandler(cache).RegisterRoutes(router.Group("/gallery"))
	events.NewHandler(cache).RegisterRoutes(router.Group("/events"))
	offers.NewHandler(cache).RegisterRoutes(router.Group("/offers"))
	instagram.NewHandler(cache).RegisterRoutes(router.Group("/instagram"))
	testimonials.NewHandler(cache, coordinator).RegisterRoutes(router.Group("/testimonials"))
	newsletter.NewHandler(coordinator).RegisterRoutes(router.Group("/newsletter"))

	bookingHandler := bookings.NewHandler(cache, coordinator, notifySrv)
	bookingHandler.RegisterPublicRoutes(router.Group("/bookings"))

	// Auth
	authCfg := utils.LoadAuthConfig()
	tokenSvc := auth.TokenService{
		Secret:   []byte(authCfg.JWTSecret),
		Issuer:   authCfg.JWTIssuer,
		Duration: authCfg.JWTDuration,
	}
	authRepo := auth.NewRepo(db)
	authHandler := auth.NewHandler(authRepo, tokenSvc, authCfg.SignupCode)
	authHandler.RegisterRoutes(router.Group("/auth"))

	// Admin panel (protected)
	protected := router.Group("/admin")
	protected.Use(auth.AuthMiddleware(tokenSvc, authRepo))

	protected.GET("/me", func(c *gin.Context) {
		claims := auth.MustGetClaims(c)
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.AdminID,
			"username": claims.Username,
			"email":    claims.Email,
		})
	})

	admin.NewHandler(cache, coordinator, registry).RegisterRoutes(protected)
	dashboard.NewHandler(projector).RegisterRoutes(protected)
	bookingHandler.RegisterAdminRoutes(protected)

	httpSrv := &http.Server{
		Addr:    srvCfg.HTTPAddr,
		Handler: router,
	}

	errCh := make(chan error, 3)
	var wg stdsync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := tcpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := notifySrv.Run(); err != nil {
			errCh <- err
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Printf("HTTP API server listening on %s", srvCfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("shutdown signal received: %s", sig)
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	log.Println("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown error: %v", err)
	}
	if err := tcpSrv.Close(); err != nil {
		log.Printf("tcp shutdown error: %v", err)
	}
	if err := notifySrv.Close(); err != nil {
		log.Printf("udp shutdown error: %v", err)
	}

	wg.Wait()
	log.Println("servers stopped")
}
