// File: cmd/workinghours/main.go
//
// workinghours migrates legacy day-name-keyed employee schedules to the
// normalized time-slot form, and back.
//
//	workinghours migrate   rewrite every legacy schedule in the database
//	workinghours test      run the converter against a built-in fixture
//	workinghours rollback  restore the legacy day-name-keyed form
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"backmoney/config"
	"backmoney/database"
	employeeRepoPkg "backmoney/database/repository/employee"
	"backmoney/models"
	"backmoney/services/schedule"
	"backmoney/utils"

	"go.uber.org/zap"
)

const usage = `Usage: workinghours <command>

Commands:
  migrate    convert legacy day-name schedules to normalized time slots
  test       run the converter against a built-in fixture (no database)
  rollback   restore legacy day-name schedules from time slots
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		return
	}

	switch os.Args[1] {
	case "migrate":
		runBatch(func(r *schedule.Runner, ctx context.Context) (schedule.Result, error) {
			return r.Migrate(ctx)
		})
	case "rollback":
		runBatch(func(r *schedule.Runner, ctx context.Context) (schedule.Result, error) {
			return r.Rollback(ctx)
		})
	case "test":
		runFixture()
	default:
		// Unknown commands are not an error; print usage and do nothing.
		fmt.Printf("Unknown command %q\n\n%s", os.Args[1], usage)
	}
}

func runBatch(run func(*schedule.Runner, context.Context) (schedule.Result, error)) {
	config.LoadConfig()
	logger := utils.GetLogger()
	database.InitDB()

	runner := &schedule.Runner{
		Store:  employeeRepoPkg.NewMongoEmployeeRepo(),
		Logger: logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	res, err := run(runner, ctx)
	if err != nil {
		logger.Error("Batch run failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done: %d total, %d converted, %d skipped, %d failed\n",
		res.Total, res.Migrated, res.Skipped, res.Failed)
	if res.Failed > 0 {
		os.Exit(1)
	}
}

// runFixture exercises the converter on a representative legacy schedule
// and prints the before/after forms. It needs no database.
func runFixture() {
	legacy := []models.LegacyDay{
		{Day: "Segunda", Times: []string{"08:00", "09:00", "14:00"}},
		{Day: "terca-feira", Times: []string{"10:00"}},
		{Day: "Sabado", Times: []string{"08:30", "23:30"}},
		{Day: "feriado", Times: []string{"08:00"}}, // unknown day, skipped
	}

	fmt.Println("Legacy schedule:")
	for _, d := range legacy {
		fmt.Printf("  %s - %v\n", d.Day, d.Times)
	}

	wh := schedule.Migrate(legacy)
	out, err := json.MarshalIndent(wh, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("\nNormalized schedule:")
	fmt.Println(string(out))

	fmt.Println("\nRolled back:")
	for _, d := range schedule.Rollback(wh) {
		fmt.Printf("  %s - %v\n", d.Day, d.Times)
	}
}
