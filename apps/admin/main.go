package main

import (
	"log"
	"os"

	logsvc "github.com/darasa-app/darasa/services/logger"
	redisdb "github.com/darasa-app/darasa/storage/database/redis"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up storage
	client, err := redisdb.Open()
	errAndDie(err)
	defer client.Close()

	logSvc := logsvc.NewStdLogger(logger)
	schedRepo, err := redisdb.NewScheduleRepository(client, logSvc)
	errAndDie(err)
	sylRepo, err := redisdb.NewSyllabusRepository(client, logSvc)
	errAndDie(err)
	attRepo, err := redisdb.NewAttendanceRepository(client, logSvc)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		schedRepo: schedRepo,
		sylRepo:   sylRepo,
		attRepo:   attRepo,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
