package events_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	events "github.com/geirtul/event-classification-example/pkg"
)

func assertDisjointExhaustive(t *testing.T, n int, subsets ...[]int) {
	t.Helper()
	var all []int
	for _, subset := range subsets {
		all = append(all, subset...)
	}
	require.Len(t, all, n, "subsets must cover every index exactly once")
	sort.Ints(all)
	for i, index := range all {
		assert.Equal(t, i, index)
	}
}

func TestSplitIndices_DisjointExhaustive(t *testing.T) {
	tests := []struct {
		n        int
		heldOut  float64
		wantTest int
	}{
		{10, 0.2, 2},
		{10, 0.25, 3},  // round(2.5) rounds half up
		{100, 0.2, 20},
		{7, 0.5, 4},    // round(3.5) rounds half up
		{3, 0.25, 1},   // round(0.75)
	}

	for _, tc := range tests {
		train, test, err := events.SplitIndices(tc.n, tc.heldOut, 42)
		require.NoError(t, err)
		assert.Len(t, test, tc.wantTest)
		assert.Len(t, train, tc.n-tc.wantTest)
		assertDisjointExhaustive(t, tc.n, train, test)
	}
}

func TestSplitIndices_Reproducible(t *testing.T) {
	trainA, testA, err := events.SplitIndices(100, 0.2, 42)
	require.NoError(t, err)
	trainB, testB, err := events.SplitIndices(100, 0.2, 42)
	require.NoError(t, err)
	assert.Equal(t, trainA, trainB)
	assert.Equal(t, testA, testB)

	_, testC, err := events.SplitIndices(100, 0.2, 43)
	require.NoError(t, err)
	assert.NotEqual(t, testA, testC)
}

func TestSplitIndices_EmptyPartition(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		heldOut float64
	}{
		{"no records", 0, 0.2},
		{"held-out rounds to zero", 5, 0.05},
		{"held-out swallows everything", 5, 0.99},
		{"zero fraction", 10, 0},
		{"full fraction", 10, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := events.SplitIndices(tc.n, tc.heldOut, 42)
			var empty *events.ErrEmptyPartition
			require.ErrorAs(t, err, &empty)
		})
	}
}

func TestSplitTrainValTest_ThreeWay(t *testing.T) {
	train, validation, test, err := events.SplitTrainValTest(100, 0.2, 0.25, 42)
	require.NoError(t, err)

	assert.Len(t, test, 20)
	assert.Len(t, validation, 20) // 0.25 of the remaining 80
	assert.Len(t, train, 60)
	assertDisjointExhaustive(t, 100, train, validation, test)
}

func TestSplitTrainValTest_TwoWay(t *testing.T) {
	train, validation, test, err := events.SplitTrainValTest(10, 0.2, 0, 42)
	require.NoError(t, err)

	assert.Empty(t, validation)
	assert.Len(t, test, 2)
	assert.Len(t, train, 8)
	assertDisjointExhaustive(t, 10, train, test)
}
