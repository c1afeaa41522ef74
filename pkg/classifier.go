package events

import (
	"fmt"

	linear_model "github.com/YuminosukeSato/scigo/sklearn/linear_model"
	"gonum.org/v1/gonum/mat"
)

// The classifier itself is an external library; this file only packs the
// aligned containers into the matrix shapes it expects.

// DatasetMatrices packs a dataset into a feature matrix (N x 256, flattened
// image order) and a label column vector.
func DatasetMatrices(d *Dataset) (*mat.Dense, *mat.Dense, error) {
	n := d.Len()
	if n == 0 {
		return nil, nil, &ErrEmptyDataset{Operation: "build classifier matrices"}
	}

	X := mat.NewDense(n, ImagePixels, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		if len(d.Images[i]) != ImagePixels {
			return nil, nil, fmt.Errorf("image %d has %d pixels, expected %d", i, len(d.Images[i]), ImagePixels)
		}
		X.SetRow(i, d.Images[i])
		y.Set(i, 0, float64(d.Labels[i]))
	}
	return X, y, nil
}

// TrainClassifier fits a logistic regression on the training partition and
// returns its accuracy on the held-out partition. Both partitions are
// expected to be normalized already, each with its own statistics.
func TrainClassifier(train *Dataset, test *Dataset, seed int64) (float64, error) {
	XTrain, yTrain, err := DatasetMatrices(train)
	if err != nil {
		return 0, err
	}
	XTest, yTest, err := DatasetMatrices(test)
	if err != nil {
		return 0, err
	}

	classifier := linear_model.NewLogisticRegression(
		linear_model.WithLRMaxIter(1000),
		linear_model.WithLRRandomState(seed),
	)
	if err := classifier.Fit(XTrain, yTrain); err != nil {
		return 0, fmt.Errorf("error fitting classifier: %w", err)
	}

	accuracy := classifier.Score(XTest, yTest)
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Held-out accuracy: %.4f on %d events", accuracy, test.Len())
		logger.Info(message, "classifier")
	}
	return accuracy, nil
}
