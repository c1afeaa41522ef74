package events

import (
	"encoding/json"
	"fmt"
	"os"
)

type Configuration struct {
	FileIn             string          `json:"file_in"`
	RunNumber          int             `json:"run_number"`
	FileOut            string          `json:"file_out"`
	MaxEvents          int             `json:"max_events"`
	Skip               int             `json:"skip"`
	Verbosity          int             `json:"verbosity"`
	OnMalformed        MalformedPolicy `json:"on_malformed"`
	TestFraction       float64         `json:"test_fraction"`
	ValidationFraction float64         `json:"validation_fraction"`
	Seed               int64           `json:"seed"`
	Normalize          bool            `json:"normalize"`
	WriteData          bool            `json:"write_data"`
	CompressionLevel   int             `json:"compression_level"`
	TrainClassifier    bool            `json:"train_classifier"`
	NoDB               bool            `json:"no_db"`
	Host               string          `json:"host"`
	User               string          `json:"user"`
	Passwd             string          `json:"pass"`
	DBName             string          `json:"dbname"`
}

var configuration Configuration = DefaultConfiguration()

func GetConfiguration() Configuration {
	return configuration
}

func SetConfiguration(config Configuration) {
	configuration = config
}

func DefaultConfiguration() Configuration {
	var config Configuration
	config.MaxEvents = 1000000000
	config.Skip = 0
	config.Verbosity = 0
	config.OnMalformed = SkipMalformed
	config.TestFraction = 0.2
	config.ValidationFraction = 0
	config.Seed = 42
	config.Normalize = true
	config.WriteData = true
	config.CompressionLevel = 4
	config.TrainClassifier = false
	config.NoDB = true
	config.Host = "next.ific.uv.es"
	config.User = "nextreader"
	config.Passwd = "readonly"
	config.DBName = "SCINTSIM"
	return config
}

func LoadConfiguration(filename string) (Configuration, error) {
	config := DefaultConfiguration()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

// MalformedPolicy decides what ingestion does with a line that fails to
// decode: count-and-skip it or abort on the first one.
type MalformedPolicy int

const (
	SkipMalformed MalformedPolicy = iota
	AbortOnMalformed
)

var malformedPolicyStrings = []string{
	"skip",
	"abort",
}

func (p MalformedPolicy) String() string {
	if p < SkipMalformed || p > AbortOnMalformed {
		return "UNKNOWN"
	}
	return malformedPolicyStrings[p]
}

func (p MalformedPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *MalformedPolicy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for i, v := range malformedPolicyStrings {
		if v == s {
			*p = MalformedPolicy(i)
			return nil
		}
	}
	return fmt.Errorf("invalid MalformedPolicy: %s", s)
}
