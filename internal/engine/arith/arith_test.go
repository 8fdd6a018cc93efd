package arith_test

import (
	"math"
	"testing"

	"tricalc/internal/domain"
	"tricalc/internal/engine/arith"
)

func TestApply(t *testing.T) {
	cases := []struct {
		name       string
		op         domain.Operator
		prev, curr float64
		want       float64
	}{
		{"add", domain.OpAdd, 3, 4, 7},
		{"sub", domain.OpSub, 3, 4, -1},
		{"mul", domain.OpMul, 2.5, 4, 10},
		{"div", domain.OpDiv, 1, 4, 0.25},
		{"pow", domain.OpPow, 2, 10, 1024},
		{"cube root", domain.OpNthRoot, 27, 3, 3},
		{"square root", domain.OpNthRoot, 16, 2, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := arith.Apply(tc.op, tc.prev, tc.curr)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestApply_Anomalies(t *testing.T) {
	if got := arith.Apply(domain.OpDiv, 1, 0); !math.IsInf(got, 1) {
		t.Fatalf("1/0 = %v, want +Inf", got)
	}
	if got := arith.Apply(domain.OpDiv, -1, 0); !math.IsInf(got, -1) {
		t.Fatalf("-1/0 = %v, want -Inf", got)
	}
	if got := arith.Apply(domain.OpDiv, 0, 0); !math.IsNaN(got) {
		t.Fatalf("0/0 = %v, want NaN", got)
	}
	if got := arith.Apply(domain.OpNthRoot, -8, 3); !math.IsNaN(got) {
		t.Fatalf("cube root of -8 = %v, want NaN", got)
	}
	if got := arith.Apply(domain.OpNone, 1, 1); !math.IsNaN(got) {
		t.Fatalf("no operator = %v, want NaN", got)
	}
}

func TestApplyUnary(t *testing.T) {
	cases := []struct {
		fn   domain.ScientificFunction
		x    float64
		want float64
	}{
		{domain.FnSin, math.Pi / 2, 1},
		{domain.FnCos, 0, 1},
		{domain.FnTan, 0, 0},
		{domain.FnLog10, 1000, 3},
		{domain.FnLn, math.E, 1},
		{domain.FnSqrt, 81, 9},
		{domain.FnPi, 42, math.Pi},
		{domain.FnE, 42, math.E},
	}
	for _, tc := range cases {
		t.Run(tc.fn.String(), func(t *testing.T) {
			got := arith.ApplyUnary(tc.fn, tc.x)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("%s(%v) = %v, want %v", tc.fn, tc.x, got, tc.want)
			}
		})
	}
}

func TestApplyUnary_LogBasesDiffer(t *testing.T) {
	if arith.ApplyUnary(domain.FnLog10, 100) == arith.ApplyUnary(domain.FnLn, 100) {
		t.Fatal("log and ln must not agree on 100")
	}
	if got := arith.ApplyUnary(domain.FnSqrt, -1); !math.IsNaN(got) {
		t.Fatalf("sqrt(-1) = %v, want NaN", got)
	}
}
