// Package vector holds the element-wise addition variants that are being compared: two backed by gonum's vectorized
// routines and one plain loop.
package vector

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrDimensionMismatch = errors.New("vectors differ in length")
	ErrNegativeLength    = errors.New("negative vector length")
)

// Filled returns a vector of n copies of v
func Filled(n int, v float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}

	result := make([]float64, n)
	for i := range result {
		result[i] = v
	}

	return result, nil
}

// Add sums a and b as gonum dense vectors
func Add(a, b []float64) ([]float64, error) {
	if err := assertSameDim(a, b); err != nil {
		return nil, err
	}

	// mat refuses zero length vectors
	if len(a) == 0 {
		return []float64{}, nil
	}

	var sum mat.VecDense
	sum.AddVec(mat.NewVecDense(len(a), a), mat.NewVecDense(len(b), b))

	return sum.RawVector().Data, nil
}

// LibAdd sums a and b with floats.AddTo, into a freshly allocated vector
func LibAdd(a, b []float64) ([]float64, error) {
	if err := assertSameDim(a, b); err != nil {
		return nil, err
	}

	return floats.AddTo(make([]float64, len(a)), a, b), nil
}

// LoopAdd sums a and b one element at a time
func LoopAdd(a, b []float64) ([]float64, error) {
	if err := assertSameDim(a, b); err != nil {
		return nil, err
	}

	result := make([]float64, 0, len(a))
	for i := 0; i < len(a); i++ {
		result = append(result, a[i]+b[i])
	}

	return result, nil
}

func assertSameDim(a, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d and %d", ErrDimensionMismatch, len(a), len(b))
	}

	return nil
}
