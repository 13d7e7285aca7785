package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Ayushpund/Acharya/apps/shared"
	"github.com/Ayushpund/Acharya/core"
	logsvc "github.com/Ayushpund/Acharya/services/logger"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "CLI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	deps, err := shared.Setup(conf, logger, log.New(os.Stdout, "", 0))
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up dependencies: %v", err), err)
	}

	cli := commandLine{
		svc:        deps.Dashboard,
		db:         deps.DB,
		translator: deps.Translator,
		out:        os.Stdout,
		videoDelay: conf.Progress.VideoCompletionDelay,
	}
	err = cli.run(os.Args)
	if cErr := deps.Close(); cErr != nil {
		logger.Error("closing dependencies", cErr)
	}
	if err != nil {
		if err != errHelp {
			fmt.Fprintf(os.Stderr, "\nerror: %s\n", cli.describe(err))
		}
		os.Exit(1)
	}
}
