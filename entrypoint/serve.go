package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"text2phenotype.com/absa/api"
	"text2phenotype.com/absa/logger"
	"text2phenotype.com/absa/lookup"
	"text2phenotype.com/absa/pipeline"
	"text2phenotype.com/absa/types"
	"text2phenotype.com/absa/utils"
	"text2phenotype.com/absa/worker"
)

const pipelineStartMaxRetries = 5

var buildIndexCmd = &cobra.Command{
	Use:   "build-index",
	Short: "Build keyword index caches for every configuration",
	Args:  cobra.NoArgs,
	RunE:  runBuildIndex,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API and the queue worker",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var superviseCmd = &cobra.Command{
	Use:   "supervise -- executable [args...]",
	Short: "Run a process and turn its panics into structured log records",
	Args:  cobra.MinimumNArgs(1),
	// the supervised command line is passed through untouched
	DisableFlagParsing: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetupLogging()
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 && args[0] == "--" {
			args = args[1:]
		}
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "supervise: missing executable")
			os.Exit(2)
		}
		os.Exit(logger.WrapProcess(args[0], args[1:]...))
	},
}

func runBuildIndex(cmd *cobra.Command, args []string) error {
	absaLogger := logger.NewLogger("Main")
	if config.CachePath == "" {
		return errors.New("ABSA_CACHE_PATH is not set")
	}
	cfgs, err := types.LoadConfigurations(config.ConfigPath)
	if err != nil {
		absaLogger.Err(err).Msg("Failed to load configurations")
		return err
	}
	built := 0
	for _, cfg := range cfgs {
		if cfg.Pipeline != types.AspectSentimentPipeline {
			continue
		}
		cachePath, terms, err := lookup.BuildIndexCache(cfg, config.DictionaryPath, config.CachePath)
		if err != nil {
			absaLogger.Err(err).Str("config_name", cfg.Name).Msg("Failed to build index cache")
			return err
		}
		absaLogger.Info().
			Str("config_name", cfg.Name).
			Str("cache_path", cachePath).
			Int("terms", terms).
			Msg("Index cache built")
		built++
	}
	absaLogger.Info().Msgf("Configs indexes cache was built for %d configurations. Exit...", built)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	absaLogger := logger.NewLogger("Main")
	if !config.RestAPIActive && !config.WorkerActive {
		return errors.New("nothing to serve: both the REST API and the worker are disabled")
	}

	builder, err := newDocumentBuilder()
	if err != nil {
		return err
	}
	scorer, err := newScorer()
	if err != nil {
		return err
	}

	pipelineChannel := make(chan pipeline.Pipeline)
	go func() {
		for retry := 0; retry < pipelineStartMaxRetries; retry++ {
			cfgs, err := types.LoadConfigurations(config.ConfigPath)
			if err != nil {
				absaLogger.Err(err).Msg("Failed to load configurations. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			absaLogger.Info().Msgf("Loaded %d configurations", len(cfgs))
			absaLogger.Info().Msg("Starting pipelines loading")

			params := pipeline.GetDefaultParams(config.DictionaryPath, config.CachePath, cfgs)
			params.SentenceModel = config.SentenceModel
			params.LemmatizerResources = config.LemmatizerResources
			params.LexiconPath = config.LexiconPath
			ppln, err := pipeline.AspectSentiment(params)
			if err != nil {
				absaLogger.Err(err).Msg("Failed to start aspect sentiment pipeline. Retrying in 5 sec")
				time.Sleep(5 * time.Second)
				continue
			}
			utils.GlobalStringStore().Lock()
			absaLogger.Info().Msg("Pipelines loaded")
			pipelineChannel <- ppln
			return
		}
		absaLogger.Fatal().Caller().Msgf("Could not start pipelines after %d retries, exiting", pipelineStartMaxRetries)
	}()

	// block until pipeline loads
	ppln := <-pipelineChannel

	apiErrors := make(chan error, 1)
	if config.RestAPIActive {
		go func() {
			apiRequest := &api.Request{
				Pipeline: ppln,
				Builder:  builder,
				Scorer:   scorer,
			}
			host := fmt.Sprintf(":%s", config.RestAPIPort)
			absaLogger.Info().Msgf("REST API on %s", host)
			err := http.ListenAndServe(host, apiRequest.Handler())
			absaLogger.Err(err).Caller().Msg("REST API stopped with error")
			apiErrors <- err
		}()
	}

	if !config.WorkerActive {
		return <-apiErrors
	}

	absaLogger.Info().Msg("Start ABSA Worker")
	for {
		rmqWorker, err := worker.New(ppln)
		if err != nil {
			absaLogger.Err(err).Msg("Could not initialize RMQ worker")
			return err
		}
		if err = rmqWorker.StartWorker(); err != nil {
			absaLogger.Err(err).Msg("Worker returned with error. Launching new in 5 seconds")
			time.Sleep(5 * time.Second)
		}
	}
}
