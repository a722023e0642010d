package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/jil-inventory/inventory-api/docs"
	v1 "github.com/jil-inventory/inventory-api/internal/api/handler/v1"
	"github.com/jil-inventory/inventory-api/internal/api/middleware"
	"github.com/jil-inventory/inventory-api/internal/config"
	"github.com/jil-inventory/inventory-api/internal/repository"
	"github.com/jil-inventory/inventory-api/internal/repository/dao"
	"github.com/jil-inventory/inventory-api/internal/service"
)

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Reports *service.ReportService
}

func NewServer(conf *config.AppConfig, db *gorm.DB, sqlxDB *sqlx.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		Reports: service.NewReportService(repository.NewReportRepository(dao.NewReportDAO(sqlxDB)), conf.Report.LowStockThreshold),
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	catalogHandler := s.initCatalogHandler(db, sqlxDB)
	ledgerHandler := s.initLedgerHandler(db)
	reportHandler := v1.NewReportHandler(s.Reports)
	s.MountHandlers(authHandler, catalogHandler, ledgerHandler, reportHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	userDAO := dao.NewUserDAO(db)
	repo := repository.NewUserRepository(userDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initCatalogHandler(db *gorm.DB, sqlxDB *sqlx.DB) *v1.CatalogHandler {
	catalogDAO := dao.NewCatalogDAO(db)
	repo := repository.NewCatalogRepository(catalogDAO)
	inventory := repository.NewReportRepository(dao.NewReportDAO(sqlxDB))
	svc := service.NewCatalogService(repo, inventory)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initLedgerHandler(db *gorm.DB) *v1.LedgerHandler {
	ledgerDAO := dao.NewLedgerDAO(db)
	repo := repository.NewLedgerRepository(ledgerDAO)
	svc := service.NewLedgerService(repo)
	uSvc := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(db)))
	handler := v1.NewLedgerHandler(svc, uSvc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	catalogHandler *v1.CatalogHandler,
	ledgerHandler *v1.LedgerHandler,
	reportHandler *v1.ReportHandler,
) {
	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	s.Router.GET("/health", v1.HandleHealthcheck)
	s.Router.POST("/auth/login", authHandler.HandleLogin)

	public := s.Router.Group("")
	{
		public.GET("/locations", catalogHandler.HandleListLocations)
		public.GET("/categories", catalogHandler.HandleListCategories)
		public.GET("/items", catalogHandler.HandleListItems)
		public.GET("/item_count", catalogHandler.HandleItemCount)
		public.GET("/filters", catalogHandler.HandleFilters)
		public.GET("/inventory", catalogHandler.HandleListInventory)
		public.GET("/movements", ledgerHandler.HandleListMovements)
		public.GET("/summary", reportHandler.HandleSummary)
		public.GET("/reports/summary", reportHandler.HandleReportSummary)
	}

	s.Router.POST("/movements", authenticator.OptionalJWT(), ledgerHandler.HandleCreateMovement)

	admin := s.Router.Group("", authenticator.VerifyJWT())
	{
		admin.POST("/locations", catalogHandler.HandleCreateLocation)
		admin.POST("/categories", catalogHandler.HandleCreateCategory)
		admin.PUT("/categories/:categoryID/parent", catalogHandler.HandleSetCategoryParent)
		admin.POST("/items", catalogHandler.HandleCreateItem)
		admin.PUT("/inventory/cost", ledgerHandler.HandleSetCost)
	}

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Inventory API"
	docs.SwaggerInfo.Description = "Stock ledger, catalog and reports for multi-location inventory."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
