// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/iwvelando/home-buyer/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for home-buyer.
type Configuration struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Export   ExportConfig   `yaml:"export,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
}

// DefaultsConfig pre-seeds the wizard input buffers. Entries stay text
// because they seed editable fields rather than parsed numbers; percent and
// amount entries pre-seed the respective side of a dual field.
type DefaultsConfig struct {
	HouseValue         string `yaml:"houseValue,omitempty"`
	DownPaymentPercent string `yaml:"downPaymentPercent,omitempty"`
	DownPaymentAmount  string `yaml:"downPaymentAmount,omitempty"`
	HOAFee             string `yaml:"hoaFee,omitempty"`
	InterestRate       string `yaml:"interestRate,omitempty"`
	PropertyTaxPercent string `yaml:"propertyTaxPercent,omitempty"`
	PropertyTaxAmount  string `yaml:"propertyTaxAmount,omitempty"`
	InsurancePercent   string `yaml:"insurancePercent,omitempty"`
	InsuranceAmount    string `yaml:"insuranceAmount,omitempty"`
	MaintenancePercent string `yaml:"maintenancePercent,omitempty"`
	MaintenanceAmount  string `yaml:"maintenanceAmount,omitempty"`
	PMIPercent         string `yaml:"pmiPercent,omitempty"`
	PMIAmount          string `yaml:"pmiAmount,omitempty"`
	AppreciationRate   string `yaml:"appreciationRate,omitempty"`
	LoanTermYears      string `yaml:"loanTermYears,omitempty"`
	ExtraPrincipal     string `yaml:"extraPrincipal,omitempty"`
}

// ExportConfig overrides the CSV destinations for the two export contexts.
type ExportConfig struct {
	SpreadsheetFile string `yaml:"spreadsheetFile,omitempty"`
	SummaryFile     string `yaml:"summaryFile,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is an error only when mustExist is
// set; otherwise the zero configuration is returned so the program runs on
// built-in defaults.
func LoadConfiguration(configPath string, mustExist bool) (*Configuration, error) {
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !mustExist {
			return &Configuration{}, nil
		}
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate returns warnings for default entries that would not parse once
// the wizard runs. Warnings never block startup; the wizard reports its own
// error if a bad value is still present when the projection is requested.
func (conf *Configuration) Validate() []string {
	var warnings []string

	numericDefaults := []struct {
		name string
		text string
	}{
		{"defaults.houseValue", conf.Defaults.HouseValue},
		{"defaults.downPaymentPercent", conf.Defaults.DownPaymentPercent},
		{"defaults.downPaymentAmount", conf.Defaults.DownPaymentAmount},
		{"defaults.hoaFee", conf.Defaults.HOAFee},
		{"defaults.interestRate", conf.Defaults.InterestRate},
		{"defaults.propertyTaxPercent", conf.Defaults.PropertyTaxPercent},
		{"defaults.propertyTaxAmount", conf.Defaults.PropertyTaxAmount},
		{"defaults.insurancePercent", conf.Defaults.InsurancePercent},
		{"defaults.insuranceAmount", conf.Defaults.InsuranceAmount},
		{"defaults.maintenancePercent", conf.Defaults.MaintenancePercent},
		{"defaults.maintenanceAmount", conf.Defaults.MaintenanceAmount},
		{"defaults.pmiPercent", conf.Defaults.PMIPercent},
		{"defaults.pmiAmount", conf.Defaults.PMIAmount},
		{"defaults.appreciationRate", conf.Defaults.AppreciationRate},
		{"defaults.extraPrincipal", conf.Defaults.ExtraPrincipal},
	}
	for _, field := range numericDefaults {
		if warning := validation.DecimalDefault(field.name, field.text); warning != "" {
			warnings = append(warnings, warning)
		}
	}

	if warning := validation.TermDefault("defaults.loanTermYears", conf.Defaults.LoanTermYears); warning != "" {
		warnings = append(warnings, warning)
	}

	return warnings
}
