package events

import (
	"math"
	"math/rand"
)

// Partitions are index sets, not copies: any downstream result can be traced
// back to the original record through its index.

// roundHalfUp makes the held-out size deterministic for fractions that land
// exactly on .5.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// SplitIndices shuffles [0, n) uniformly at random without replacement using
// the given seed and splits it into a training and a held-out subset. The
// held-out subset gets round(heldOut*n) indices (round half up), training
// gets the rest. The two sets are disjoint and together cover every index
// exactly once.
func SplitIndices(n int, heldOut float64, seed int64) (train []int, test []int, err error) {
	if n <= 0 {
		return nil, nil, &ErrEmptyPartition{Name: "train", N: n, Fraction: heldOut}
	}
	k := roundHalfUp(heldOut * float64(n))
	if k <= 0 {
		return nil, nil, &ErrEmptyPartition{Name: "test", N: n, Fraction: heldOut}
	}
	if k >= n {
		return nil, nil, &ErrEmptyPartition{Name: "train", N: n, Fraction: heldOut}
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	test = perm[:k]
	train = perm[k:]
	return train, test, nil
}

// SplitTrainValTest splits [0, n) three ways. The test fraction applies to
// the full set; the validation fraction applies to what remains after the
// test subset is removed. A zero validation fraction yields a two-way split
// with an empty validation set.
func SplitTrainValTest(n int, testFraction, validationFraction float64, seed int64) (train, validation, test []int, err error) {
	train, test, err = SplitIndices(n, testFraction, seed)
	if err != nil {
		return nil, nil, nil, err
	}
	if validationFraction == 0 {
		return train, nil, test, nil
	}

	// Split positions within the remaining training indices, then map back.
	trainPos, valPos, err := SplitIndices(len(train), validationFraction, seed+1)
	if err != nil {
		return nil, nil, nil, err
	}
	validation = make([]int, len(valPos))
	for i, p := range valPos {
		validation[i] = train[p]
	}
	remaining := make([]int, len(trainPos))
	for i, p := range trainPos {
		remaining[i] = train[p]
	}
	return remaining, validation, test, nil
}
