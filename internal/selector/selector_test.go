package selector

import (
	"testing"

	"github.com/backmassage/ytbatch/internal/probe"
)

func res(throttled, mp4 bool) *probe.Result {
	return &probe.Result{BestIsThrottled: throttled, HasMP4Under1080: mp4}
}

// The full decision table: probe present/absent crossed with forceBest.
func TestSelect_DecisionTable(t *testing.T) {
	cases := []struct {
		name      string
		res       *probe.Result
		forceBest bool
		want      Outcome
	}{
		{
			"forceBest probed throttled",
			res(true, true), true,
			Outcome{Expr: ExprBest, WarnThrottled: true},
		},
		{
			"forceBest probed clean",
			res(false, false), true,
			Outcome{Expr: ExprBest},
		},
		{
			"forceBest unprobed",
			nil, true,
			Outcome{Expr: ExprBestFallback},
		},
		{
			"throttled with mp4 alternative downgrades",
			res(true, true), false,
			Outcome{Expr: ExprMP4Capped, Downgraded: true},
		},
		{
			"throttled without alternative warns",
			res(true, false), false,
			Outcome{Expr: ExprBestFallback, WarnThrottled: true},
		},
		{
			"clean best, mp4 present",
			res(false, true), false,
			Outcome{Expr: ExprBestFallback},
		},
		{
			"clean best, no mp4",
			res(false, false), false,
			Outcome{Expr: ExprBestFallback},
		},
		{
			"probe absent defaults to capped",
			nil, false,
			Outcome{Expr: ExprMP4Capped},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Select(tc.res, tc.forceBest)
			if got != tc.want {
				t.Errorf("Select: got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestSelect_CleanBestNeverWarnsOrDowngrades(t *testing.T) {
	for _, mp4 := range []bool{true, false} {
		got := Select(res(false, mp4), false)
		if got.WarnThrottled || got.Downgraded {
			t.Errorf("mp4=%v: got %+v, want no warning and no downgrade", mp4, got)
		}
	}
}

func TestSelect_ForceBestNeverDowngrades(t *testing.T) {
	inputs := []*probe.Result{nil, res(true, true), res(true, false), res(false, true)}
	for _, r := range inputs {
		got := Select(r, true)
		if got.Downgraded {
			t.Errorf("res=%+v: downgraded under forceBest", r)
		}
		wantExpr := ExprBestFallback
		if r != nil {
			wantExpr = ExprBest
		}
		if got.Expr != wantExpr {
			t.Errorf("res=%+v: expr got %q, want %q", r, got.Expr, wantExpr)
		}
	}
}

func TestSelect_Idempotent(t *testing.T) {
	r := res(true, true)
	first := Select(r, false)
	for i := 0; i < 3; i++ {
		if got := Select(r, false); got != first {
			t.Fatalf("run %d: got %+v, want %+v", i, got, first)
		}
	}
}

func TestBypass(t *testing.T) {
	if got := Bypass(false); got != (Outcome{Expr: ExprPlainBest}) {
		t.Errorf("Bypass(false): got %+v", got)
	}
	if got := Bypass(true); got != (Outcome{Expr: ExprBestFallback}) {
		t.Errorf("Bypass(true): got %+v", got)
	}
}

func TestIsThrottleAwareHost(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abc", true},
		{"https://youtube.com/watch?v=abc", true},
		{"https://m.youtube.com/watch?v=abc", true},
		{"https://youtu.be/abc", true},
		{"https://vimeo.com/12345", false},
		{"https://example.org/youtube.com/fake", false},
		{"https://notyoutube.com/watch", false},
		{"://not a url", false},
	}
	for _, tc := range cases {
		if got := IsThrottleAwareHost(tc.url); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.url, got, tc.want)
		}
	}
}
