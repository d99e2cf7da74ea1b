package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/lucaseduardo5855/ABarateira/config"
	"github.com/lucaseduardo5855/ABarateira/internal/cache"
	"github.com/lucaseduardo5855/ABarateira/internal/database"
	"github.com/lucaseduardo5855/ABarateira/internal/gateway/handlers"
	"github.com/lucaseduardo5855/ABarateira/internal/gateway/middleware"
	"github.com/lucaseduardo5855/ABarateira/internal/notify"
	"github.com/lucaseduardo5855/ABarateira/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.LoadConfig()
	logger := config.GetLogger()

	redisClient := config.NewRedisClient(cfg.Redis)
	defer redisClient.Close()

	db, err := database.NewConnection(cfg.DB.DSN)
	if err != nil {
		logger.Fatalf("Failed to connect to db: %v", err)
	}

	if err := database.MigratePharmacyDB(db); err != nil {
		logger.Fatalf("Failed to migrate pharmacy database: %v", err)
	}

	listCache := cache.NewRedisCache(redisClient)
	notifier := notify.NewLogNotifier(logger)

	medicamentoStore := store.NewMedicamentoStore(db, listCache, notifier, logger)
	fornecedorStore := store.NewFornecedorStore(db, listCache, notifier, logger)
	vendaStore := store.NewVendaStore(db, listCache, notifier, logger)
	promocaoStore := store.NewPromocaoStore(db, listCache, notifier, logger)
	estoqueStore := store.NewEstoqueStore(db, listCache, logger)
	produtoStore := store.NewProdutoStore(notifier)

	medicamentoHandler := handlers.NewMedicamentoHTTPHandler(medicamentoStore)
	fornecedorHandler := handlers.NewFornecedorHTTPHandler(fornecedorStore)
	vendaHandler := handlers.NewVendaHTTPHandler(vendaStore)
	promocaoHandler := handlers.NewPromocaoHTTPHandler(promocaoStore)
	estoqueHandler := handlers.NewEstoqueHTTPHandler(estoqueStore)
	produtoHandler := handlers.NewProdutoHTTPHandler(produtoStore)
	authHandler := handlers.NewAuthHTTPHandler(db, logger, time.Duration(cfg.Auth.TokenTTL)*time.Hour)

	r := gin.Default()

	r.Use(middleware.CORS())
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RateLimit())

	// --- Public API Group ---
	public := r.Group("/api/v1")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
		}
	}

	// --- Protected API Group ---
	protected := r.Group("/api/v1")
	protected.Use(middleware.JWTAuth())
	{
		auth := protected.Group("/auth")
		{
			auth.GET("/me", authHandler.Me)
			auth.POST("/logout", authHandler.Logout)
		}

		medicamentos := protected.Group("/medicamentos")
		{
			medicamentos.GET("", medicamentoHandler.List)
			medicamentos.GET("/consulta", medicamentoHandler.Consulta)
			medicamentos.POST("", medicamentoHandler.Create)
			medicamentos.PUT("/:id", medicamentoHandler.Update)
			medicamentos.DELETE("/:id", medicamentoHandler.Delete)
		}

		fornecedores := protected.Group("/fornecedores")
		{
			fornecedores.GET("", fornecedorHandler.List)
			fornecedores.POST("", fornecedorHandler.Create)
			fornecedores.PUT("/:id", fornecedorHandler.Update)
			fornecedores.DELETE("/:id", fornecedorHandler.Delete)
		}

		vendas := protected.Group("/vendas")
		{
			vendas.GET("", vendaHandler.List)
			vendas.GET("/busca", vendaHandler.Search)
			vendas.POST("", vendaHandler.Create)
		}

		promocoes := protected.Group("/promocoes")
		{
			promocoes.GET("", promocaoHandler.List)
			promocoes.POST("", promocaoHandler.Create)
			promocoes.PUT("/:id", promocaoHandler.Update)
			promocoes.DELETE("/:id", promocaoHandler.Delete)
		}

		estoque := protected.Group("/estoque-filiais")
		{
			estoque.GET("", estoqueHandler.List)
		}

		produtos := protected.Group("/produtos")
		{
			produtos.GET("", produtoHandler.List)
			produtos.POST("", produtoHandler.Create)
			produtos.PUT("/:id", produtoHandler.Update)
			produtos.DELETE("/:id", produtoHandler.Delete)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   "Server is running",
			"timestamp": time.Now(),
		})
	})

	port := ":" + cfg.HTTP.Port
	logger.Printf("Starting server on port %s", port)
	if err := r.Run(port); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
