package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/foldkit/foldkit/field"
)

const (
	// EnvVarPrefix is the prefix of every environment variable read by the CLI e.g. FOLDKIT_WORKERS.
	EnvVarPrefix     = "FOLDKIT"
	DefaultSeparator = ","
)

// FoldConfiguration is the configuration of the foldkit CLI.
type FoldConfiguration struct {
	// Workers is the number of partitions folded concurrently. 0 means one per CPU.
	Workers int `mapstructure:"workers"`
	// PartitionSize is the maximum number of elements per partition. 0 derives it from Workers.
	PartitionSize int `mapstructure:"partition_size"`
	// Separator is used when joining customer names.
	Separator string `mapstructure:"separator"`
	// Dataset is the path of a YAML dataset. The built-in dataset is used when empty.
	Dataset string `mapstructure:"dataset"`
	Verbose bool   `mapstructure:"verbose"`
}

func (cfg *FoldConfiguration) Validate() error {
	validation.ErrorTag = "mapstructure"
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.Workers, validation.Min(0)),
		validation.Field(&cfg.PartitionSize, validation.Min(0)),
		validation.Field(&cfg.Separator, validation.Required),
	)
	if err != nil {
		return WrapValidationError(field.ToOptionalString(EnvVarPrefix), err)
	}
	return nil
}

func DefaultFoldConfiguration() *FoldConfiguration {
	return &FoldConfiguration{
		Separator: DefaultSeparator,
	}
}
