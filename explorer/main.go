package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"bikeshare/communication"
	"bikeshare/dataset"
	"bikeshare/explorer/config"
	"bikeshare/session"
)

const configEnvVarName = "BIKESHARE_CONFIG"

type explorerFlags struct {
	configFilepath string
	logLevel       string
	dataDir        string
}

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string, output io.Writer) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetFormatter(customFormatter)
	log.SetOutput(output)
	log.SetLevel(level)
	return nil
}

func newRootCommand() *cobra.Command {
	flags := &explorerFlags{}

	cmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Interactive exploration of US bikeshare data",
		Long:          "Asks for a city, a month and a day of week and shows statistics about the bikeshare trips that match them.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true

	defaultConfigFilepath := os.Getenv(configEnvVarName)
	if defaultConfigFilepath == "" {
		defaultConfigFilepath = config.DefaultConfigFilepath
	}

	cmd.Flags().StringVarP(&flags.configFilepath, "config", "c", defaultConfigFilepath, "path to the explorer config file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "log level, overrides the config file")
	cmd.Flags().StringVar(&flags.dataDir, "data-dir", "", "directory with the city csv files, overrides the config file")
	return cmd
}

func run(cmd *cobra.Command, flags *explorerFlags) error {
	explorerConfig, err := config.LoadConfig(flags.configFilepath)
	if err != nil {
		return err
	}

	if flags.logLevel != "" {
		explorerConfig.LogLevel = flags.logLevel
	}
	if flags.dataDir != "" {
		explorerConfig.DataDir = flags.dataDir
	}

	if err := InitLogger(explorerConfig.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}
	log.Debugf("[config: %s][status: OK] config loaded correctly", flags.configFilepath)

	publisher, closePublisher, err := newPublisher(explorerConfig)
	if err != nil {
		return err
	}
	defer closePublisher()

	loader := dataset.NewLoader(explorerConfig.DatasetConfig())
	s := session.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), loader, publisher, explorerConfig.PageSize)

	err = s.Run(cmd.Context())
	if errors.Is(err, session.ErrInputClosed) {
		log.Debug("input closed, finishing session")
		return nil
	}
	return err
}

// newPublisher returns the RabbitMQ report publisher if it is enabled, otherwise a publisher that discards the reports
func newPublisher(explorerConfig *config.ExplorerConfig) (session.Publisher, func(), error) {
	publisherConfig := explorerConfig.ReportPublisher
	if !publisherConfig.Enabled {
		return session.NoopPublisher{}, func() {}, nil
	}

	rabbitMQ, err := communication.NewRabbitMQ(publisherConfig.RabbitURL)
	if err != nil {
		return nil, nil, err
	}

	reportPublisher, err := communication.NewReportPublisher(rabbitMQ, publisherConfig.Queue)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, nil, err
	}

	closePublisher := func() {
		if err := reportPublisher.Close(); err != nil {
			log.Errorf("[publisher: report][status: ERROR] error closing connection: %s", err.Error())
		}
	}
	return reportPublisher, closePublisher, nil
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, using system env vars")
	}

	if err := newRootCommand().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
