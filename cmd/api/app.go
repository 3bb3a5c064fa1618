package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/contaflux/fiscal-engine/internal/adapter/api/controller"
	"github.com/contaflux/fiscal-engine/internal/adapter/api/route"
	"github.com/contaflux/fiscal-engine/internal/adapter/repository"
	"github.com/contaflux/fiscal-engine/internal/domain/classification"
	"github.com/contaflux/fiscal-engine/internal/domain/tax"
	"github.com/contaflux/fiscal-engine/internal/infrastructure/database"
	"github.com/contaflux/fiscal-engine/internal/infrastructure/rates"
	"github.com/contaflux/fiscal-engine/pkg/logger"
	"github.com/contaflux/fiscal-engine/pkg/tenant"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	log    logger.Logger

	ruleRepository classification.Repository

	classificationController *controller.ClassificationController
	taxController            *controller.TaxController
	ruleController           *controller.RuleController
}

// NewApp cria uma nova instância da aplicação
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Repositório de regras: banco de dados ou memória (DB_DISABLED=true)
	var db *pgxpool.Pool
	var ruleRepo classification.Repository
	if os.Getenv("DB_DISABLED") == "true" {
		log.Info("banco de dados desabilitado, usando repositório em memória com regras padrão")
		ruleRepo = repository.NewMemoryRuleRepository(classification.DefaultRules()...)
	} else {
		pool, err := database.NewPostgresPool(context.Background())
		if err != nil {
			return nil, err
		}
		db = pool

		if database.MigrationsEnabled() {
			if err := database.RunMigrations(); err != nil {
				pool.Close()
				return nil, err
			}
		}

		ruleRepo = repository.NewPostgresRuleRepository(pool)
	}

	// Tabelas de alíquotas (com sobrescritas via RATES_FILE)
	rateTable, err := rates.Load()
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	// Serviços de domínio
	heuristic := classification.NewKeywordClassifier(classification.DefaultHeuristicConfig())
	suggester := classification.NewSuggester()
	classificationService := classification.NewService(ruleRepo, heuristic, suggester, log)
	calculator := tax.NewCalculator(rateTable, log)

	// Controllers
	classificationController := controller.NewClassificationController(classificationService, log)
	taxController := controller.NewTaxController(calculator, log)
	ruleController := controller.NewRuleController(ruleRepo, log)

	// Router e middlewares globais
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", tenant.HeaderName},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))
	router.Use(tenant.Middleware())

	return &App{
		router:                   router,
		db:                       db,
		log:                      log,
		ruleRepository:           ruleRepo,
		classificationController: classificationController,
		taxController:            taxController,
		ruleController:           ruleController,
	}, nil
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.SetupClassificationRoutes(api, a.classificationController)
	route.SetupTaxRoutes(api, a.taxController)
	route.SetupRuleRoutes(api, a.ruleController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start configura as rotas e inicia o servidor HTTP
func (a *App) Start() error {
	a.SetupRoutes("/api/v1")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.log.Info("iniciando servidor HTTP", "port", port)
	return a.router.Run(":" + port)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
