package main

import (
	"log"
	"os"

	echoapi "github.com/darasa-app/darasa/apps/api/echo"
	"github.com/darasa-app/darasa/core"
	"github.com/darasa-app/darasa/core/attendance"
	"github.com/darasa-app/darasa/core/schedule"
	"github.com/darasa-app/darasa/core/syllabus"
	emailsvc "github.com/darasa-app/darasa/services/email"
	logsvc "github.com/darasa-app/darasa/services/logger"
	redisdb "github.com/darasa-app/darasa/storage/database/redis"
)

func main() {
	logger := newLogger()

	// set up storage
	client, err := redisdb.Open()
	if err != nil {
		logger.Fatal("opening redis", err)
	}
	defer client.Close()

	schedRepo, err := redisdb.NewScheduleRepository(client, logger)
	errAndDie(logger, err)
	sylRepo, err := redisdb.NewSyllabusRepository(client, logger)
	errAndDie(logger, err)
	attRepo, err := redisdb.NewAttendanceRepository(client, logger)
	errAndDie(logger, err)

	// set up services
	var mailSvc core.EmailService
	if core.Conf.Debug {
		mailSvc = emailsvc.NewConsoleService()
	} else {
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	// start API server
	app := echoapi.NewServer(&echoapi.Options{
		Addr:          core.Conf.Server.Addr,
		Logger:        logger,
		ScheduleSvc:   schedule.NewService(schedRepo, mailSvc),
		SyllabusSvc:   syllabus.NewService(sylRepo),
		AttendanceSvc: attendance.NewService(attRepo),
	})
	app.Start()
}

func newLogger() core.Logger {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	if core.Conf.Debug || core.Conf.RollbarToken == "" {
		return logsvc.NewStdLogger(std)
	}
	return logsvc.NewRollbarLogger(std, core.Conf)
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error())
	}
}
