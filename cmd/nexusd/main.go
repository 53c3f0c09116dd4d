package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/Decentr-net/go-api/health"
	"github.com/Decentr-net/logrus/sentry"

	"github.com/nexus-social/nexus/internal/generator"
	"github.com/nexus-social/nexus/internal/generator/openai"
	"github.com/nexus-social/nexus/internal/generator/static"
	"github.com/nexus-social/nexus/internal/media"
	"github.com/nexus-social/nexus/internal/server"
	"github.com/nexus-social/nexus/internal/store/inmemory"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Host string `long:"http.host" env:"HTTP_HOST" default:"0.0.0.0" description:"IP to listen on"`
	Port int    `long:"http.port" env:"HTTP_PORT" default:"8080" description:"port to listen on"`

	OpenAIKey   string `long:"openai.key" env:"OPENAI_API_KEY" description:"openai api key; when empty the static fixture provider is used"`
	OpenAIModel string `long:"openai.model" env:"OPENAI_MODEL" default:"gpt-4o-mini" description:"openai model for content generation"`

	LogLevel  string `long:"log.level" env:"LOG_LEVEL" default:"info" description:"Log level" choice:"debug" choice:"info" choice:"warning" choice:"error"`
	SentryDSN string `long:"sentry.dsn" env:"SENTRY_DSN" description:"sentry dsn"`
}{}

var errTerminated = errors.New("terminated")

func main() {
	_ = godotenv.Load()

	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "Nexus"
	parser.LongDescription = "Nexus social feed simulator"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	lvl, _ := logrus.ParseLevel(opts.LogLevel) // err will always be nil
	logrus.SetLevel(lvl)

	if opts.SentryDSN != "" {
		hook, err := sentry.NewHook(sentry.Options{
			Dsn:              opts.SentryDSN,
			AttachStacktrace: true,
			Release:          health.GetVersion(),
			ServerName:       "nexusd",
		}, logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel)

		if err != nil {
			logrus.WithError(err).Fatal("failed to init sentry")
		}

		logrus.AddHook(hook)
	} else {
		logrus.Info("empty sentry dsn")
		logrus.Warn("skip sentry initialization")
	}

	reg := media.NewRegistry()
	s := inmemory.New(getGenerator(), reg)

	r := chi.NewMux()
	r.Get("/health", health.Handler(
		5*time.Second,
		s, // the store reports readiness once initialized
	))
	server.SetupRouter(s, reg, r)

	srv := http.Server{
		Addr:    fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler: r,
	}

	ctx, cancel := context.WithCancel(context.Background())

	gr, _ := errgroup.WithContext(ctx)
	gr.Go(func() error {
		if err := s.Initialize(ctx); err != nil {
			return fmt.Errorf("failed to initialize store: %w", err)
		}

		return nil
	})
	gr.Go(srv.ListenAndServe)
	gr.Go(func() error {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

		s := <-sigs

		logrus.Infof("terminating by %s signal", s)

		cancel()
		_ = srv.Shutdown(context.Background())

		return errTerminated
	})

	logrus.Info("service started")

	if err := gr.Wait(); err != nil && !errors.Is(err, errTerminated) && !errors.Is(err, http.ErrServerClosed) {
		logrus.WithError(err).Fatal("service unexpectedly closed")
	}
}

func getGenerator() generator.Generator {
	if opts.OpenAIKey == "" {
		logrus.Warn("no openai key configured, using static fixture provider")
		return static.New()
	}

	logrus.WithField("model", opts.OpenAIModel).Info("using openai content provider")

	return openai.New(opts.OpenAIKey, opts.OpenAIModel)
}
