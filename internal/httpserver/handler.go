package httpserver

import (
	"context"

	"donation-report-srv/internal/middleware"
	reportHTTP "donation-report-srv/internal/report/delivery/http"
	reportJob "donation-report-srv/internal/report/delivery/job"
	"donation-report-srv/internal/report/factory"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// mapHandlers wires the report domain onto the router and returns the cleanup
// scheduler, which the caller starts and stops.
func (srv HTTPServer) mapHandlers(ctx context.Context) (*reportJob.Scheduler, error) {
	mw := middleware.New(srv.l, srv.registry)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	domain, err := factory.New(ctx, factory.Deps{
		Logger:   srv.l,
		Config:   srv.config,
		DB:       srv.postgresDB,
		Redis:    srv.redisClient,
		Producer: srv.producer,
		Metrics:  srv.registry,
	})
	if err != nil {
		return nil, err
	}

	reportHandler := reportHTTP.New(srv.l, domain.UseCase, srv.discord)
	reportHandler.RegisterRoutes(&srv.gin.RouterGroup)
	srv.l.Infof(ctx, "Report domain registered")

	return reportJob.New(reportJob.Config{
		Logger:        srv.l,
		UseCase:       domain.UseCase,
		Schedule:      srv.config.Report.CleanupSchedule,
		RetentionDays: srv.config.Report.CleanupRetentionDays,
	})
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(mw.RequestLog())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	srv.gin.GET("/metrics", gin.WrapH(promhttp.HandlerFor(srv.registry, promhttp.HandlerOpts{})))

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
