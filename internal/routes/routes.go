package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/ponto-eletronico/internal/handlers"
	infraRepo "github.com/BruksfildServices01/ponto-eletronico/internal/infra/repository"
	ucPonto "github.com/BruksfildServices01/ponto-eletronico/internal/usecase/ponto"
	ucStats "github.com/BruksfildServices01/ponto-eletronico/internal/usecase/stats"
	ucUsuario "github.com/BruksfildServices01/ponto-eletronico/internal/usecase/usuario"
	"github.com/BruksfildServices01/ponto-eletronico/internal/validators"
)

type Deps struct {
	DB     *gorm.DB
	Health handlers.Pinger

	// Cache nil desliga o cache do resumo.
	Cache ucStats.Cache
	// Archiver nil desliga o arquivo dos relatórios.
	Archiver handlers.Archiver

	ReportLocation *time.Location
	ReportFooter   string
}

func RegisterRoutes(r *gin.Engine, deps Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	pontoRepo := infraRepo.NewPontoGormRepository(deps.DB)
	usuarioRepo := infraRepo.NewUsuarioGormRepository(deps.DB)
	statsRepo := infraRepo.NewStatsGormRepository(deps.DB)

	validate := validators.New()

	cache := deps.Cache
	if cache == nil {
		cache = ucStats.NoCache{}
	}

	loc := deps.ReportLocation
	if loc == nil {
		loc = time.UTC
	}

	// ======================================================
	// USE CASES
	// ======================================================
	createPontoUC := ucPonto.NewCreatePonto(pontoRepo, validate, cache)
	listPontosUC := ucPonto.NewListPontos(pontoRepo)
	updatePontoUC := ucPonto.NewUpdatePonto(pontoRepo, validate, cache)
	deletePontoUC := ucPonto.NewDeletePonto(pontoRepo, cache)

	createUsuarioUC := ucUsuario.NewCreateUsuario(usuarioRepo, validate, cache)
	listUsuariosUC := ucUsuario.NewListUsuarios(usuarioRepo)

	summaryUC := ucStats.NewGetSummary(statsRepo, cache)

	// ======================================================
	// HANDLERS
	// ======================================================
	healthHandler := handlers.NewHealthHandler(deps.Health)
	usuarioHandler := handlers.NewUsuarioHandler(createUsuarioUC, listUsuariosUC)
	pontoHandler := handlers.NewPontoHandler(createPontoUC, listPontosUC, updatePontoUC, deletePontoUC)
	statsHandler := handlers.NewStatsHandler(summaryUC)
	relatorioHandler := handlers.NewRelatorioHandler(listPontosUC, loc, deps.ReportFooter, deps.Archiver)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/", handlers.Root)
	r.GET("/health", healthHandler.Check)

	r.GET("/users", usuarioHandler.List)
	r.POST("/users", usuarioHandler.Create)

	pontos := r.Group("/pontos")
	{
		pontos.GET("", pontoHandler.List)
		pontos.POST("", pontoHandler.Create)
		pontos.PUT("/:id", pontoHandler.Update)
		pontos.DELETE("/:id", pontoHandler.Delete)
	}

	r.GET("/stats", statsHandler.Get)

	relatorios := r.Group("/relatorios")
	{
		relatorios.GET("/pontos.pdf", relatorioHandler.PDF)
		relatorios.GET("/pontos.xlsx", relatorioHandler.XLSX)
	}
}
