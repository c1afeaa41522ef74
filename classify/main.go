package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	events "github.com/geirtul/event-classification-example/pkg"
	"gonum.org/v1/gonum/stat"
)

var configuration events.Configuration

var (
	logger         Logger
	VerbosityLevel int
)

func init() {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}
	handlerStdOut := NewHandler(os.Stdout, opts)
	handlerStdErr := slog.NewJSONHandler(os.Stderr, opts)
	logger = Logger{
		InfoLog:  slog.New(handlerStdOut),
		ErrorLog: slog.New(handlerStdErr),
	}
}

func main() {
	configFilename := flag.String("config", "", "Configuration file path")
	flag.Parse()

	var err error
	configuration, err = events.LoadConfiguration(*configFilename)
	if err != nil {
		message := fmt.Errorf("error reading configuration file: %w", err)
		logger.Error(message.Error())
		return
	}
	events.SetConfiguration(configuration)
	events.SetLogger(logger)

	VerbosityLevel = configuration.Verbosity
	if VerbosityLevel > 0 {
		message := fmt.Sprintf("Reading configuration file: %s", *configFilename)
		logger.Info(message, "main")
		printConfiguration(configuration, logger)
	}

	fileIn := configuration.FileIn
	if fileIn == "" && !configuration.NoDB {
		dbConn, err := events.ConnectToDatabase(configuration.User, configuration.Passwd, configuration.Host, configuration.DBName)
		if err != nil {
			message := fmt.Errorf("error connecting to database: %w", err)
			logger.Error(message.Error())
			return
		}
		defer dbConn.Close()

		run, err := events.GetRunFromDB(dbConn, configuration.RunNumber)
		if err != nil {
			message := fmt.Errorf("error resolving run %d: %w", configuration.RunNumber, err)
			logger.Error(message.Error())
			return
		}
		fileIn = run.FilePath
		if VerbosityLevel > 0 {
			message := fmt.Sprintf("Run %d resolved to %s (%d events, source %s)",
				run.RunNumber, run.FilePath, run.EventCount, run.Source)
			logger.Info(message, "main")
		}
	}

	file, err := os.Open(fileIn)
	if err != nil {
		message := fmt.Errorf("error opening file: %w", err)
		logger.Error(message.Error())
		return
	}
	defer file.Close()

	start := time.Now()

	reader := events.NewEventReader(file, configuration)
	dataset, err := events.AssembleDataset(reader)
	if err != nil {
		message := fmt.Errorf("error reading events: %w", err)
		logger.Error(message.Error())
		return
	}

	singles, doubles := dataset.Counts()
	message := fmt.Sprintf("Read %d events (%d singles, %d doubles), %d malformed lines skipped",
		dataset.Len(), singles, doubles, reader.Malformed)
	logger.Info(message, "main")

	separations, relEnergies, err := dataset.DoubleEventFeatures()
	if err != nil {
		message := fmt.Errorf("error deriving double-event features: %w", err)
		logger.Error(message.Error())
		return
	}
	if len(separations) > 0 {
		message := fmt.Sprintf("Double events: mean separation %.3f px, mean relative energy %.3f",
			stat.Mean(separations, nil), stat.Mean(relEnergies, nil))
		logger.Info(message, "main")
	}

	trainIdx, valIdx, testIdx, err := events.SplitTrainValTest(dataset.Len(),
		configuration.TestFraction, configuration.ValidationFraction, configuration.Seed)
	if err != nil {
		message := fmt.Errorf("error partitioning dataset: %w", err)
		logger.Error(message.Error())
		return
	}

	partitions := make(map[string]*events.Dataset)
	for name, indices := range map[string][]int{
		"train":      trainIdx,
		"validation": valIdx,
		"test":       testIdx,
	} {
		if len(indices) == 0 {
			continue
		}
		subset, err := dataset.Select(indices)
		if err != nil {
			message := fmt.Errorf("error selecting %s partition: %w", name, err)
			logger.Error(message.Error())
			return
		}
		partitions[name] = subset
	}

	if configuration.Normalize {
		// Each partition computes its own statistics; sharing them across
		// partitions would leak held-out information into training.
		for name, subset := range partitions {
			normalized, stats, err := events.NormalizeImages(subset.Images)
			if err != nil {
				message := fmt.Errorf("error normalizing %s partition: %w", name, err)
				logger.Error(message.Error())
				return
			}
			subset.Images = normalized
			if VerbosityLevel > 0 {
				message := fmt.Sprintf("Normalized %s partition: mean %.4f, min %.4f, max %.4f",
					name, stats.Mean, stats.Min, stats.Max)
				logger.Info(message, "main")
			}
		}
	}

	if configuration.WriteData {
		writer, err := events.NewWriter(configuration.FileOut)
		if err != nil {
			message := fmt.Errorf("error creating output file: %w", err)
			logger.Error(message.Error())
			return
		}
		if err := writer.WriteAll(partitions); err != nil {
			message := fmt.Errorf("error writing partitions: %w", err)
			logger.Error(message.Error())
			writer.Close()
			return
		}
		if err := writer.Close(); err != nil {
			message := fmt.Errorf("error closing output file: %w", err)
			logger.Error(message.Error())
			return
		}
	}

	if configuration.TrainClassifier {
		accuracy, err := events.TrainClassifier(partitions["train"], partitions["test"], configuration.Seed)
		if err != nil {
			message := fmt.Errorf("error training classifier: %w", err)
			logger.Error(message.Error())
			return
		}
		message := fmt.Sprintf("Classifier accuracy on test partition: %.4f", accuracy)
		logger.Info(message, "main")
	}

	duration := time.Since(start)
	fmt.Printf("Total time: %d ms\n", duration.Milliseconds())
}
