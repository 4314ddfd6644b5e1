package main

//
//  @title           business-days-sk API
//  @version         1.0
//  @description     Slovak public holidays and business-day arithmetic.
//  @termsOfService  https://github.com/MiroBartanus/business-days-sk
//  @contact.name    API Support
//  @contact.url     https://github.com/MiroBartanus/business-days-sk
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        days
//  @tag.description Day classification and business-day arithmetic
//
//  @tag.name        holidays
//  @tag.description Easter dates, holiday lists and custom holidays
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MiroBartanus/business-days-sk/config"
	_ "github.com/MiroBartanus/business-days-sk/docs" // swagger docs
	"github.com/MiroBartanus/business-days-sk/internal/app"
	"github.com/MiroBartanus/business-days-sk/internal/domain/dto"
	"github.com/MiroBartanus/business-days-sk/internal/logger"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown waits for SIGINT/SIGTERM, shuts the server down and runs
// cleanup (e.g. closing the DB pool).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// main is the entry point of the business-days-sk application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API.
//   - check:  Classifies one date (--date YYYY-MM-DD, default today).
//   - year:   Lists the holidays and business-day count of --year.
//   - import: Imports custom holiday files from --dir.
func main() {
	ctx := context.Background()

	config.LoadConfig()
	logger.Init()

	if err := run(ctx, config.AppConfig, os.Args[1:], os.Stdout); err != nil {
		logger.L().Fatal().Err(err).Msg("command failed")
	}
}

// run parses args and executes the selected mode. API mode blocks until a
// shutdown signal arrives.
func run(ctx context.Context, cfg config.Config, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("business-days-sk", flag.ContinueOnError)
	fs.SetOutput(out)
	mode := fs.String("mode", "api", "Mode: api, check, year or import")
	date := fs.String("date", time.Now().Format(dto.DateLayout), "Date to classify in check mode (YYYY-MM-DD)")
	year := fs.Int("year", time.Now().Year(), "Year to list in year mode")
	dir := fs.String("dir", "./data/holidays", "Directory with *.csv custom holiday files")
	parallel := fs.Int("parallel", 0, "How many files to import concurrently (0=auto up to CPU, max 8)")
	port := fs.String("port", cfg.Server.Port, "Port for API mode")
	if err := fs.Parse(args); err != nil {
		return err
	}

	switch *mode {
	case "api":
		logger.L().Info().Msg("starting API server")
		router, cleanup, err := app.InitializeApp(cfg)
		if err != nil {
			return fmt.Errorf("app init: %w", err)
		}
		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)
		return nil

	case "check":
		d, err := time.Parse(dto.DateLayout, *date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		c, err := app.Build(ctx, cfg)
		if err != nil {
			return err
		}
		defer c.Close()
		return checkDate(ctx, c, d, out)

	case "year":
		c, err := app.Build(ctx, cfg)
		if err != nil {
			return err
		}
		defer c.Close()
		return listYear(ctx, c, *year, out)

	case "import":
		c, err := app.Build(ctx, cfg)
		if err != nil {
			return err
		}
		defer c.Close()

		logger.L().Info().Str("dir", *dir).Msg("running import")
		n, err := c.Service.ImportCustomHolidays(ctx, *dir, *parallel)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		logger.L().Info().Int("holidays", n).Msg("import completed successfully")
		_, err = fmt.Fprintf(out, "imported %d custom holidays\n", n)
		return err

	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
}

func checkDate(ctx context.Context, c *app.Container, d time.Time, out io.Writer) error {
	day, err := c.Service.Day(ctx, d)
	if err != nil {
		return err
	}
	next, err := c.Service.NextBusinessDay(ctx, d)
	if err != nil {
		return err
	}

	kind := "business day"
	switch {
	case day.Holiday:
		kind = fmt.Sprintf("holiday (%s)", day.HolidayName)
	case !day.BusinessDay:
		kind = "weekend"
	}
	_, err = fmt.Fprintf(out, "%s %s: %s\nnext business day: %s\n",
		day.Date.Format(dto.DateLayout), day.Weekday, kind, next.Date.Format(dto.DateLayout))
	return err
}

func listYear(ctx context.Context, c *app.Container, year int, out io.Writer) error {
	hs, err := c.Service.Holidays(ctx, year)
	if err != nil {
		return err
	}
	e, err := c.Service.Easter(ctx, year)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "%d: Easter Sunday %s, %d business days\n",
		year, e.Sunday.Format(dto.DateLayout), c.Calendar.BusinessDaysInYear(year)); err != nil {
		return err
	}
	for _, h := range hs {
		if _, err := fmt.Fprintf(out, "%s  %-9s  %-8s %s\n", h.Date.Format(dto.DateLayout), h.Date.Weekday(), h.Kind, h.Name); err != nil {
			return err
		}
	}
	return nil
}
