package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"bikeshare/communication"
	"bikeshare/dataset"
	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	DefaultConfigFilepath = "./explorer/config/config.yaml"

	logLevelEnvVarName  = "LOG_LEVEL"
	dataDirEnvVarName   = "BIKESHARE_DATA_DIR"
	rabbitUrlEnvVarName = "RABBIT_URL"
)

var ErrMissingCity = errors.New("missing city data source")

// PublisherConfig config of the RabbitMQ queue that receives the reports
type PublisherConfig struct {
	Enabled   bool                                 `yaml:"enabled"`
	Queue     communication.QueueDeclarationConfig `yaml:"queue"`
	RabbitURL string                               `yaml:"rabbit_url"`
}

type ExplorerConfig struct {
	LogLevel        string                        `yaml:"log_level" validate:"required"`
	DataDir         string                        `yaml:"data_dir" validate:"required"`
	PageSize        int                           `yaml:"page_size" validate:"gte=1"`
	TimestampLayout string                        `yaml:"timestamp_layout" validate:"required"`
	Cities          map[string]dataset.CityConfig `yaml:"cities" validate:"required,dive"`
	Columns         dataset.ColumnsConfig         `yaml:"columns"`
	ReportPublisher PublisherConfig               `yaml:"report_publisher"`
}

// LoadConfig reads the yaml file in configFilepath, applies the environment overrides and validates the result
func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	var explorerConfig ExplorerConfig
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %s", err)
	}

	if logLevel := os.Getenv(logLevelEnvVarName); logLevel != "" {
		explorerConfig.LogLevel = logLevel
	}

	if dataDir := os.Getenv(dataDirEnvVarName); dataDir != "" {
		explorerConfig.DataDir = dataDir
	}

	if rabbitURL := os.Getenv(rabbitUrlEnvVarName); rabbitURL != "" {
		explorerConfig.ReportPublisher.RabbitURL = rabbitURL
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

// Validate checks the struct constraints and that every city has a data source
func (ec *ExplorerConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(ec); err != nil {
		return fmt.Errorf("invalid explorer config: %w", err)
	}

	for _, city := range filter.Cities() {
		if _, ok := ec.Cities[city]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingCity, city)
		}
	}

	if ec.ReportPublisher.Enabled {
		if ec.ReportPublisher.RabbitURL == "" || ec.ReportPublisher.Queue.Name == "" {
			return fmt.Errorf("invalid explorer config: report publisher needs rabbit_url and queue name")
		}
	}

	return nil
}

// DatasetConfig returns the part of the config read by the dataset loader
func (ec *ExplorerConfig) DatasetConfig() dataset.Config {
	return dataset.Config{
		DataDir:         ec.DataDir,
		TimestampLayout: ec.TimestampLayout,
		Cities:          ec.Cities,
		Columns:         ec.Columns,
	}
}
