package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/canvacrancha/badge-api/docs"
	"github.com/canvacrancha/badge-api/internal/application/printing"
	"github.com/canvacrancha/badge-api/internal/application/usecase"
	"github.com/canvacrancha/badge-api/internal/domain/repository"
	"github.com/canvacrancha/badge-api/internal/infrastructure/migrations"
	infrapdf "github.com/canvacrancha/badge-api/internal/infrastructure/pdf"
	"github.com/canvacrancha/badge-api/internal/infrastructure/postgres"
	"github.com/canvacrancha/badge-api/internal/infrastructure/sqlite"
	infraxlsx "github.com/canvacrancha/badge-api/internal/infrastructure/xlsx"
	httpRouter "github.com/canvacrancha/badge-api/internal/interfaces/http"
	"github.com/canvacrancha/badge-api/pkg/config"
	"github.com/canvacrancha/badge-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:    cfg.App.Env,
		Level:  cfg.App.LogLevel,
		Global: true,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		templateRepo repository.BadgeTemplateRepository
		employeeRepo repository.EmployeeRepository
	)
	switch cfg.DB.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.DB.SQLitePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DB.SQLitePath).Msg("apertura de SQLite")
		}
		defer db.Close()
		if err := migrations.UpSQLite(db, log); err != nil {
			log.Fatal().Err(err).Msg("migraciones SQLite")
		}
		templateRepo = sqlite.NewBadgeTemplateRepository(db)
		employeeRepo = sqlite.NewEmployeeRepository(db)
	default:
		pool, err := openPostgres(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		templateRepo = postgres.NewBadgeTemplateRepository(pool)
		employeeRepo = postgres.NewEmployeeRepository(pool)
	}

	templateUC := usecase.NewBadgeTemplateUseCase(templateRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, infraxlsx.NewEmployeeExporter())
	printUC := printing.NewPrintUseCase(templateRepo, employeeRepo, infrapdf.NewMarotoBadgeGenerator())

	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: POST /api/templates sin autenticación")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    16 * 1024 * 1024, // imágenes en data URI
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swaggerConfig(cfg)))

	httpRouter.Router(app, httpRouter.RouterDeps{
		TemplateUC: templateUC,
		EmployeeUC: employeeUC,
		PrintUC:    printUC,
		Logger:     log,
		AppName:    cfg.App.Name,
		JWTSecret:  cfg.JWT.Secret,
		JWTIssuer:  cfg.JWT.Issuer,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// openPostgres aplica las migraciones con una conexión database/sql (pgx stdlib)
// y devuelve el pool que usan los repositorios.
func openPostgres(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*pgxpool.Pool, error) {
	db, err := sql.Open("pgx", cfg.ConnectionString())
	if err != nil {
		return nil, err
	}
	defer db.Close()
	if err := migrations.UpPostgres(db, log); err != nil {
		return nil, err
	}
	return postgres.NewPool(ctx, cfg)
}

// swaggerConfig usa el swagger.json de disco si existe; si no, el registrado en docs.
func swaggerConfig(cfg *config.Config) swagger.Config {
	sc := swagger.Config{
		BasePath: "/",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}
	if path := strings.TrimSpace(cfg.HTTP.DocsPath); path != "" {
		if _, err := os.Stat(path); err == nil {
			sc.FilePath = path
			return sc
		}
	}
	sc.FileContent = []byte(docs.SwaggerInfo.ReadDoc())
	return sc
}
