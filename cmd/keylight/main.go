// ***************************************************************************
//
//  Copyright 2019 David (Dizzy) Smith, dizzyd@dizzyd.com
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//       http://www.apache.org/licenses/LICENSE-2.0
//
//   Unless required by applicable law or agreed to in writing, software
//   distributed under the License is distributed on an "AS IS" BASIS,
//   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//   See the License for the specific language governing permissions and
//   limitations under the License.
// ***************************************************************************

// keylight drives the per-key RGB lighting of a Ducky One 2 RGB keyboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/dizzyd/keylight/config"
	"github.com/dizzyd/keylight/device"
)

func main() {
	logLevel := flag.String("loglevel", "info", "log level (debug, info, warn, error)")
	logFile := flag.String("logfile", "", "log destination (defaults to stderr)")
	initTraffic := flag.String("init-traffic", "preparedtraffic/DuckyOne2_Traffic_Init.txt",
		"captured init handshake to replay before sending colors")
	exitTraffic := flag.String("exit-traffic", "preparedtraffic/DuckyOne2_Traffic_Exit.txt",
		"captured exit handshake to replay on shutdown")
	flag.Parse()

	logger, closeLog, err := setupLogger(*logLevel, *logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(*initTraffic, *exitTraffic, logger); err != nil {
		logger.Error("keylight failed", "error", err)
		os.Exit(1)
	}
}

func run(initTraffic, exitTraffic string, logger *slog.Logger) error {
	keyboard, err := device.OpenDuckyOne2(initTraffic, exitTraffic, logger)
	if err != nil {
		return err
	}
	defer keyboard.Close()

	keyboard.SetConfig(config.NewFlameStarlight(time.Now().UnixNano(), time.Now()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return keyboard.Run(ctx)
}

func setupLogger(level, path string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, errors.Wrapf(err, "invalid log level %q", level)
	}

	out := io.Writer(os.Stderr)
	closeFn := func() {}
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "failed to open log file %s", path)
		}
		out = file
		closeFn = func() { file.Close() }
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
