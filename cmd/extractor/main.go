package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/cmlabs-hris/leave-extractor-go/internal/config"
	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/record"
	"github.com/cmlabs-hris/leave-extractor-go/internal/domain/summary"
	"github.com/cmlabs-hris/leave-extractor-go/internal/fixtures"
	"github.com/cmlabs-hris/leave-extractor-go/internal/pkg/database"
	"github.com/cmlabs-hris/leave-extractor-go/internal/repository/postgresql"
	employeeService "github.com/cmlabs-hris/leave-extractor-go/internal/service/employee"
	ingestService "github.com/cmlabs-hris/leave-extractor-go/internal/service/ingest"
	"github.com/cmlabs-hris/leave-extractor-go/internal/service/sheet"
	summaryService "github.com/cmlabs-hris/leave-extractor-go/internal/service/summary"
)

const usage = `Usage: extractor <command> [args]

Commands:
  ingest <file.xlsx> [...]   read workbooks, append new records, publish summaries
  publish [year [month]]     recompute and publish summaries (optionally one period)
  report <year> <month>      print the monthly balance report as JSON
  deduct                     subtract the configured days from every balance
`

// app bundles the wired services and repositories for the subcommands.
type app struct {
	ingest    *ingestService.Service
	summaries *summaryService.Service
	employees *employeeService.Service
	records   record.Repository
	roster    employee.Repository
	published summary.Repository
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	log := newLogger(cfg.App.LogLevel)
	slog.SetDefault(log)

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := postgresql.Migrate(ctx, db); err != nil {
		fmt.Println("Error migrating database:", err)
		os.Exit(1)
	}

	recordRepo := postgresql.NewRecordRepository(db)
	fileRepo := postgresql.NewProcessedFileRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)

	if err := fixtures.SeedRoster(ctx, employeeRepo, cfg.Leave.DefaultWorkdayHours, log); err != nil {
		fmt.Println("Error seeding roster:", err)
		os.Exit(1)
	}

	sheetSvc := sheet.NewService(log)
	a := &app{
		ingest:    ingestService.NewService(db, recordRepo, fileRepo, sheetSvc, log),
		summaries: summaryService.NewService(log),
		employees: employeeService.NewService(employeeRepo, log),
		records:   recordRepo,
		roster:    employeeRepo,
		published: summaryRepo,
	}

	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "ingest":
		err = a.runIngest(ctx, args)
	case "publish":
		err = a.runPublish(ctx, args)
	case "report":
		err = a.runReport(ctx, args)
	case "deduct":
		err = a.employees.DeductAll(ctx, cfg.Leave.BalanceDeductionDays)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}

func (a *app) runIngest(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return errors.New("ingest needs at least one workbook path")
	}
	for _, path := range paths {
		result, err := a.ingest.IngestFile(ctx, path)
		if err != nil {
			if errors.Is(err, record.ErrDuplicateFile) {
				fmt.Println("Skipping:", err)
				continue
			}
			return err
		}
		fmt.Printf("%s: %d new records, %d duplicates skipped\n", path, result.NewRecords, result.DuplicateCount)
	}
	return a.publishSummaries(ctx, 0, 0)
}

func (a *app) runPublish(ctx context.Context, args []string) error {
	year, month, err := parsePeriod(args)
	if err != nil {
		return err
	}
	return a.publishSummaries(ctx, year, month)
}

func (a *app) publishSummaries(ctx context.Context, year, month int) error {
	records, err := a.records.List(ctx)
	if err != nil {
		return err
	}
	roster, err := a.roster.List(ctx)
	if err != nil {
		return err
	}
	if year != 0 {
		records = summaryService.FilterByPeriod(records, year, month)
	}
	summaries := a.summaries.Aggregate(records, roster)
	if err := a.published.Publish(ctx, summaries); err != nil {
		return err
	}
	fmt.Printf("Published summaries for %d employees\n", len(summaries))
	return nil
}

func (a *app) runReport(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.New("report needs a year and a month")
	}
	year, month, err := parsePeriod(args)
	if err != nil {
		return err
	}
	records, err := a.records.List(ctx)
	if err != nil {
		return err
	}
	roster, err := a.roster.List(ctx)
	if err != nil {
		return err
	}
	rows := a.summaries.MonthlyReport(year, month, records, roster)
	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parsePeriod(args []string) (year, month int, err error) {
	if len(args) > 0 {
		if year, err = strconv.Atoi(args[0]); err != nil {
			return 0, 0, fmt.Errorf("invalid year %q: %w", args[0], err)
		}
	}
	if len(args) > 1 {
		if month, err = strconv.Atoi(args[1]); err != nil {
			return 0, 0, fmt.Errorf("invalid month %q: %w", args[1], err)
		}
		if month < 1 || month > 12 {
			return 0, 0, fmt.Errorf("invalid month %d", month)
		}
	}
	return year, month, nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
