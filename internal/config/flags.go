package config

import (
	"flag"
	"fmt"
	"os"
)

// parses CLI flags for the api server
func ParseServerFlags() ServerFlags {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	migrate := fs.Bool("migrate", true, "apply the database schema before serving")
	fs.Parse(os.Args[1:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return ServerFlags{Migrate: *migrate}
}

// parses CLI flags for the code-agent worker
func ParseWorkerFlags() WorkerFlags {
	fs := flag.NewFlagSet("worker", flag.ExitOnError)
	consumer := fs.String("consumer", defaultConsumerName(), "consumer name within the jobs group")
	migrate := fs.Bool("migrate", false, "apply the database schema before consuming")
	fs.Parse(os.Args[1:]) //nolint:errcheck,gosec // G104: ExitOnError flag set handles errors

	return WorkerFlags{Consumer: *consumer, Migrate: *migrate}
}

func defaultConsumerName() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "worker"
	}

	return fmt.Sprintf("%s-%d", host, os.Getpid())
}
