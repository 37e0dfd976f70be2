// cmd/shelfctl/main.go
package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/cli"
	"github.com/javajoker/shelflife/internal/expiry"
)

func main() {
	logrus.SetOutput(os.Stderr)
	if err := cli.NewApp(os.Stdout, expiry.SystemClock{}).Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("shelfctl failed")
	}
}
