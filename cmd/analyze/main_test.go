package main

import (
	"testing"
)

func TestAnalysisPoint(t *testing.T) {
	point := AnalysisPoint{X: 3, Y: 5}

	if point.X != 3 {
		t.Errorf("Expected X 3, got %d", point.X)
	}

	if point.Y != 5 {
		t.Errorf("Expected Y 5, got %d", point.Y)
	}
}

func TestChebyshev(t *testing.T) {
	tests := []struct {
		dx, dy   int
		expected int
	}{
		{0, 0, 0},
		{3, 0, 3},
		{0, 4, 4},
		{3, 3, 3},
		{-2, 5, 5},
		{-6, -1, 6},
	}

	for _, test := range tests {
		result := chebyshev(test.dx, test.dy)
		if result != test.expected {
			t.Errorf("chebyshev(%d, %d) = %d, expected %d", test.dx, test.dy, result, test.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{5, 5},
		{-5, 5},
		{0, 0},
		{-10, 10},
		{100, 100},
	}

	for _, test := range tests {
		result := abs(test.input)
		if result != test.expected {
			t.Errorf("abs(%d) = %d, expected %d", test.input, result, test.expected)
		}
	}
}
