package main

import (
	"context"
	"flag"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/sahilchouksey/unimatch-api/config"
	"github.com/sahilchouksey/unimatch-api/database"
	"github.com/sahilchouksey/unimatch-api/repository"
	"github.com/sahilchouksey/unimatch-api/services"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
)

func main() {
	id := flag.Uint("id", 0, "Student ID")
	email := flag.String("email", "", "Student email, used when -id is not given")
	eligibleOnly := flag.Bool("eligible-only", false, "Only list courses and bursaries the student qualifies for")
	flag.Parse()

	if *id == 0 && *email == "" {
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
	logger.Init("warn", "console")
	log := logger.With("matchreport")

	store, err := database.StartGORM()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer store.Close()

	db := store.GetDB()
	students := repository.NewStudentRepository(db)
	svc := services.NewStudentService(
		students,
		repository.NewCatalogRepository(db),
		repository.NewQuizRepository(db),
		nil,
		env.STORE_TIMEOUT,
	)

	ctx := context.Background()
	studentID := *id
	if studentID == 0 {
		student, err := students.GetByEmail(ctx, *email)
		if errors.Is(err, repository.ErrNotFound) {
			color.Red("No student registered with email %s", *email)
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to look up student")
		}
		studentID = student.ID
	}

	rep, err := buildReport(ctx, svc, studentID, *eligibleOnly)
	if errors.Is(err, repository.ErrNotFound) {
		color.Red("Student %d not found", studentID)
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build report")
	}
	render(os.Stdout, rep)
}
