//go:build integration
// +build integration

package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/MiroBartanus/business-days-sk/internal/holiday"
	"github.com/MiroBartanus/business-days-sk/internal/storage"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "businessdays",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=businessdays sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "businessdays")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/ingestion → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func TestIngestion_EndToEnd_ProcessDirectory(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	tdir := t.TempDir()
	writeTempFile(t, tdir, "firma.csv", "DenMesiac;Nazov\n02/01;po Novom roku\n27/12;\n")
	writeTempFile(t, tdir, "mesto.csv", "DenMesiac;Nazov\n16/08;Deň mesta\n")

	cal, err := holiday.NewSlovak()
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	repo := storage.NewPostgresRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	n, err := ProcessDirectory(ctx, tdir, repo, cal, 2)
	if err != nil {
		t.Fatalf("ProcessDirectory: %v", err)
	}
	if n != 3 {
		t.Fatalf("imported: want 3 got %d", n)
	}

	var cnt int
	if err := db.QueryRow("SELECT COUNT(*) FROM custom_holidays").Scan(&cnt); err != nil {
		t.Fatalf("count custom_holidays: %v", err)
	}
	if cnt != 3 {
		t.Fatalf("expected 3 rows, got %d", cnt)
	}

	// 2019-08-16 is a Friday, a business day before the import.
	if !cal.IsHoliday(time.Date(2019, time.August, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("imported holiday not registered on the calendar")
	}

	// A fresh calendar replaying the table sees the same holidays.
	fresh, err := holiday.NewSlovak()
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	rows, err := repo.ListCustomHolidays(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, h := range rows {
		if err := fresh.AddHoliday(h.Day, time.Month(h.Month), h.Name); err != nil {
			t.Fatalf("replay %s: %v", h.Spec(), err)
		}
	}
	if fresh.BusinessDaysInYear(2019) != cal.BusinessDaysInYear(2019) {
		t.Fatalf("replayed calendar differs: %d vs %d", fresh.BusinessDaysInYear(2019), cal.BusinessDaysInYear(2019))
	}
}
