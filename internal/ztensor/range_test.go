package ztensor

import (
	"errors"
	"testing"

	"github.com/omega-ml/ztensor/internal/omega"
)

func TestRangeLen(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want Index
		err  error
	}{
		{"finite", FiniteRange(-4, 4), omega.Finite[int64](8), nil},
		{"empty", FiniteRange(3, 3), omega.Finite[int64](0), nil},
		{"unbounded above", NewRange(omega.Finite[int64](0), omega.PosInf[int64]()), omega.PosInf[int64](), nil},
		{"unbounded below", NewRange(omega.NegInf[int64](), omega.Finite[int64](0)), omega.PosInf[int64](), nil},
		{"all", All(), omega.PosInf[int64](), nil},
		{"degenerate infinite", NewRange(omega.PosInf[int64](), omega.PosInf[int64]()), Index{}, omega.ErrIndeterminate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.Len()
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Len() error = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Len(): unexpected error %v", err)
			}
			if got != tt.want {
				t.Errorf("Len() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRangeIsFinite(t *testing.T) {
	if !FiniteRange(0, 3).IsFinite() {
		t.Error("finite range reported infinite")
	}
	if All().IsFinite() {
		t.Error("unbounded range reported finite")
	}
	if NewRange(omega.Finite[int64](0), omega.PosInf[int64]()).IsFinite() {
		t.Error("half-bounded range reported finite")
	}
}

func TestRangeString(t *testing.T) {
	if got := All().String(); got != "[-ω, ω)" {
		t.Errorf("All().String() = %q", got)
	}
	if got := FiniteRange(0, 3).String(); got != "[0, 3)" {
		t.Errorf("FiniteRange(0, 3).String() = %q", got)
	}
}
