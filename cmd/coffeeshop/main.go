package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"coffeeshop/pkg/app"
	"coffeeshop/pkg/infrastructure/dispatcher"
	"coffeeshop/pkg/terminal"
)

func main() {
	cnf, err := parseEnv()
	if err != nil {
		log.Fatal(err)
	}

	application := &cli.App{
		Name:  appID,
		Usage: "coffee shop point of sale",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: cnf.LogLevel, Usage: "logrus level (debug, info, warning, error)"},
			&cli.StringFlag{Name: "log-format", Value: cnf.LogFormat, Usage: "text or json"},
			&cli.StringFlag{Name: "log-file", Value: cnf.LogFile, Usage: "write logs to this file instead of stderr"},
		},
		Action: func(c *cli.Context) error {
			cnf.LogLevel = c.String("log-level")
			cnf.LogFormat = c.String("log-format")
			cnf.LogFile = c.String("log-file")
			return runSession(cnf, os.Stdin, os.Stdout)
		},
	}

	if err := application.Run(os.Args); err != nil {
		log.WithError(err).Fatal("coffeeshop stopped")
	}
}

func runSession(cnf *config, in io.Reader, out io.Writer) error {
	closer, err := setupLogger(cnf)
	if err != nil {
		return err
	}
	defer closer.Close()

	logger := log.StandardLogger()
	shop, err := app.NewDefaultShop(dispatcher.NewLoggingDispatcher(logger))
	if err != nil {
		return errors.Wrap(err, "failed to seed shop")
	}

	session, err := shop.NewSession()
	if err != nil {
		return err
	}
	log.WithField("session_id", session.ID().String()).Info("session started")

	return terminal.NewConsole(session, in, out, logger).Run()
}
