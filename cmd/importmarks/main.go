package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/sahilchouksey/unimatch-api/config"
	"github.com/sahilchouksey/unimatch-api/database"
	"github.com/sahilchouksey/unimatch-api/model"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

// importer writes parsed rows through the same service the API uses
type importer struct {
	students repository.StudentRepository
	service  *services.StudentService
	create   bool
}

type summary struct {
	updated int
	created int
	skipped int
}

func (imp *importer) importRow(ctx context.Context, row MarkRow) (bool, error) {
	created := false
	student, err := imp.students.GetByEmail(ctx, row.Email)
	if errors.Is(err, repository.ErrNotFound) && imp.create {
		student = &model.Student{
			Email:     row.Email,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			School:    row.School,
		}
		err = imp.students.Create(ctx, student)
		created = err == nil
	}
	if err != nil {
		return false, err
	}
	_, err = imp.service.SubmitMarks(ctx, student.ID, row.Marks)
	return created, err
}

func (imp *importer) run(ctx context.Context, sheet *Sheet) summary {
	var sum summary
	for _, row := range sheet.Rows {
		created, err := imp.importRow(ctx, row)
		if err != nil {
			color.Red("line %d (%s): %v", row.Line, row.Email, err)
			sum.skipped++
			continue
		}
		if created {
			sum.created++
		}
		sum.updated++
	}
	return sum
}

func main() {
	file := flag.String("file", "", "Path to an .xlsx workbook with an email column and one column per subject")
	create := flag.Bool("create", false, "Create students whose email is not registered yet")
	dryRun := flag.Bool("dry-run", false, "Parse and validate the workbook without writing anything")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.LoadENV(); err != nil {
		color.Yellow("Warning: .env file not found, using system environment variables")
	}
	env, err := config.Get()
	if err != nil {
		color.Red("Failed to read configuration: %v", err)
		os.Exit(1)
	}
	logger.Init(env.LOG_LEVEL, "console")
	log := logger.With("importmarks")

	f, err := os.Open(*file)
	if err != nil {
		color.Red("Error opening file: %v", err)
		os.Exit(1)
	}
	sheet, err := ParseSheet(f)
	f.Close()
	if err != nil {
		color.Red("Error reading workbook: %v", err)
		os.Exit(1)
	}

	for _, header := range sheet.Ignored {
		color.Yellow("Ignoring column %q", header)
	}
	for _, p := range sheet.Problems {
		color.Red("line %d: %s", p.Line, p.Message)
	}
	fmt.Printf("%d valid rows, %d rejected\n", len(sheet.Rows), len(sheet.Problems))
	if *dryRun {
		return
	}

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	db := store.GetDB()
	students := repository.NewStudentRepository(db)
	imp := &importer{
		students: students,
		service: services.NewStudentService(
			students,
			repository.NewCatalogRepository(db),
			repository.NewQuizRepository(db),
			nil,
			env.STORE_TIMEOUT,
		),
		create: *create,
	}

	sum := imp.run(context.Background(), sheet)
	color.Green("Import completed: %d updated (%d new students), %d skipped", sum.updated, sum.created, sum.skipped)
}
