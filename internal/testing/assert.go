package testing

import (
	"reflect"
	"testing"
)

// Equal asserts that values are deeply equal.
func Equal[T any](t testing.TB, a, b T) {
	t.Helper()

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected '%v' to be equal to '%v'", a, b)
	}
}

// True asserts that the condition holds.
func True(t testing.TB, condition bool) {
	t.Helper()

	if !condition {
		t.Fatalf("expected condition to be true")
	}
}

// NoError asserts that error did not occur.
func NoError(t testing.TB, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("expected success, got '%v'", err)
	}
}

// Error asserts that an error occurred.
func Error(t testing.TB, err error) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected an error")
	}
}
