package main

import (
	"database/sql"
	"log"
	"os"

	apiConfig "sales/src/api/config"
	authController "sales/src/auth/infrastructure/controller"
	"sales/src/auth/infrastructure/token"
	productUseCase "sales/src/products/application/usecase"
	productCache "sales/src/products/infrastructure/cache"
	productController "sales/src/products/infrastructure/controller"
	productPersistence "sales/src/products/infrastructure/persistence"
	saleUseCase "sales/src/sales/application/usecase"
	saleClient "sales/src/sales/infrastructure/client"
	saleController "sales/src/sales/infrastructure/controller"
	"sales/src/sales/infrastructure/eventbus"
	salePersistence "sales/src/sales/infrastructure/persistence"
	sharedConfig "sales/src/shared/infrastructure/config"
	"sales/src/shared/infrastructure/middleware"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Sales Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	log.Printf("PROMETHEUS_ENABLED value: '%s'", prometheusEnabled)

	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint for Sales service")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		log.Println("/metrics endpoint registered successfully for Sales service")
	} else {
		log.Println("Prometheus metrics disabled for Sales service")
	}

	// Configurar GZIP y otros middlewares compartidos
	gzipSharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, gzipSharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "sales_db")

	// Crear string de conexión para sales_db
	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a sales_db: %s", connStr)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		err = db.Ping()
		if err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Println("✅ Conexión a sales_db establecida con éxito")
		}
	}

	// Bus de eventos de dominio en memoria
	bus := eventbus.NewInMemoryBus()

	// Suscriptor de webhook para eventos salientes (opcional via EVENT_WEBHOOK_URL)
	webhookClient := saleClient.NewEventWebhookClient()
	if webhookClient != nil {
		bus.SubscribeAll(webhookClient.Notify)
		log.Println("✅ Webhook de eventos configurado")
	} else {
		log.Println("Webhook de eventos deshabilitado (EVENT_WEBHOOK_URL no definido)")
	}

	// Servicio de tokens JWT
	tokenService := token.NewJWTTokenService()

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check y versión)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = getEnv("SERVICE_VERSION", "1.0.0")
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Módulo Auth (login, sin autenticación previa)
	authCtrl := authController.NewAuthController(tokenService)
	authCtrl.RegisterRoutes(v1)

	// Rutas protegidas por JWT
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(tokenService))

	// Configurar módulos de negocio
	setupSalesModule(protected, db, bus)
	setupProductsModule(protected, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Sales Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/api/v1/health", port)
	router.Run(":" + port)
}

// setupSalesModule configura el módulo Sales
func setupSalesModule(router *gin.RouterGroup, db *sql.DB, bus *eventbus.InMemoryBus) {
	log.Println("Configurando módulo Sales...")

	if db == nil {
		log.Println("⚠️  Módulo Sales deshabilitado (sin conexión a DB)")
		return
	}

	// Crear repositorio
	saleRepo := salePersistence.NewSalePostgresRepository(db)

	// Crear casos de uso
	createSaleUC := saleUseCase.NewCreateSaleUseCase(saleRepo, bus)
	getSaleUC := saleUseCase.NewGetSaleUseCase(saleRepo)
	listSalesUC := saleUseCase.NewListSalesUseCase(saleRepo)
	updateSaleUC := saleUseCase.NewUpdateSaleUseCase(saleRepo, bus)
	cancelSaleUC := saleUseCase.NewCancelSaleUseCase(saleRepo, bus)
	addSaleItemUC := saleUseCase.NewAddSaleItemUseCase(saleRepo, bus)
	removeSaleItemUC := saleUseCase.NewRemoveSaleItemUseCase(saleRepo, bus)

	// Crear controladores
	saleCtrl := saleController.NewSaleController(createSaleUC, getSaleUC, listSalesUC, updateSaleUC, cancelSaleUC, addSaleItemUC, removeSaleItemUC)

	dailyReportUC := saleUseCase.NewDailyReportUseCase(db)
	reportCtrl := saleController.NewReportController(dailyReportUC)

	// Registrar rutas
	saleCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulo Sales configurado exitosamente")
}

// setupProductsModule configura el módulo Products
func setupProductsModule(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulo Products...")

	if db == nil {
		log.Println("⚠️  Módulo Products deshabilitado (sin conexión a DB)")
		return
	}

	// Crear repositorio y cache en memoria
	productRepo := productPersistence.NewProductPostgresRepository(db)
	prodCache := productCache.NewProductCache()

	// Crear casos de uso
	createProductUC := productUseCase.NewCreateProductUseCase(productRepo, prodCache)
	getProductUC := productUseCase.NewGetProductUseCase(productRepo, prodCache)
	listProductsUC := productUseCase.NewListProductsUseCase(productRepo)
	updateProductUC := productUseCase.NewUpdateProductUseCase(productRepo, prodCache)
	deleteProductUC := productUseCase.NewDeleteProductUseCase(productRepo, prodCache)

	// Crear controlador
	productCtrl := productController.NewProductController(createProductUC, getProductUC, listProductsUC, updateProductUC, deleteProductUC)

	// Registrar rutas
	productCtrl.RegisterRoutes(router)

	log.Println("Módulo Products configurado exitosamente")
}
