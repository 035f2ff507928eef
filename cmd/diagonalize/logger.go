// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// setupLogger builds the stderr logger; every entry carries the run id.
func setupLogger(level logrus.Level, w io.Writer) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	logger.SetLevel(level)

	return logger.WithField("run_id", uuid.NewString())
}
