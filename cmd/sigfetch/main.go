package main

import (
	"os"

	sigfetch "github.com/cloudfoundry/sigfetch"
	"github.com/cloudfoundry/sigfetch/internal/log"
)

const debugEnv = "SIGFETCH_DEBUG"

func main() {
	if os.Getenv(debugEnv) != "" {
		log.SetDebugMode()
	}

	fetcher := &sigfetch.ConcreteFetcher{}

	host, err := fetcher.GetHostIdentity()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get uname")
	}
	log.Debug().
		Str("kernel", host.KernelName).
		Str("release", host.KernelRelease).
		Str("node", host.NodeName).
		Msg("Read host identity")

	lines := sigfetch.Collect(fetcher, host, log.Logger)
	if err := sigfetch.Render(os.Stdout, lines); err != nil {
		log.Error().Err(err).Msg("Failed to write output")
	}
}
