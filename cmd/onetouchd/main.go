// Package main is the entry point for the onetouchd daemon.
package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/onetouch-io/onetouch/internal/daemon/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.WithError(err).Error("onetouchd exited")
		os.Exit(1)
	}
}
