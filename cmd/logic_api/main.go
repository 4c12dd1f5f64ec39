// Package main Logic Hunter API
// @title Logic Hunter API
// @version 1.0
// @description A boolean expression workbench: assemble token strips from a fixed palette, evaluate them under assignments and enumerate truth tables
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email support@logichunter.dev
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/logic-hunter/docs"
	"github.com/DjordjeVuckovic/logic-hunter/internal/router"
	"github.com/DjordjeVuckovic/logic-hunter/internal/server"
	"github.com/DjordjeVuckovic/logic-hunter/internal/workspace"
	pkgserver "github.com/DjordjeVuckovic/logic-hunter/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	healthChecker := pkgserver.NewOkHealthChecker()

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Logic Hunter API is running")
	})

	appCfg, err := LoadAppConfig()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}

	store := workspace.NewStore()
	store.StartCleanupLoop(s.Context(), appCfg.WorkspaceCleanupInterval, appCfg.WorkspaceMaxIdle)

	exprRouter := router.NewExpressionRouter(s.Echo)
	exprRouter.Bind()

	wsRouter := router.NewWorkspaceRouter(s.Echo, store)
	wsRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
