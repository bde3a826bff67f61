// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import "testing"

func TestParseArgsValid(t *testing.T) {
	cases := []struct {
		args      []string
		wantPort  int
		wantSched string
		wantThr   int
	}{
		{[]string{"8080", "SJF", "1"}, 8080, "SJF", 1},
		{[]string{"80", "RR", "4"}, 80, "RR", 4},
		{[]string{"1", "MLQF", "16"}, 1, "MLQF", 16},
	}
	for _, c := range cases {
		port, sched, thr, ok := parseArgs(c.args)
		if !ok {
			t.Fatalf("parseArgs(%v): got ok=false, want true", c.args)
		}
		if port != c.wantPort || sched != c.wantSched || thr != c.wantThr {
			t.Fatalf("parseArgs(%v): got (%d, %q, %d), want (%d, %q, %d)",
				c.args, port, sched, thr, c.wantPort, c.wantSched, c.wantThr)
		}
	}
}

func TestParseArgsInvalid(t *testing.T) {
	cases := [][]string{
		nil,
		{"8080", "SJF"},
		{"8080", "SJF", "1", "extra"},
		{"not-a-port", "SJF", "1"},
		{"0", "SJF", "1"},
		{"8080", "FIFO", "1"},
		{"8080", "SJF", "0"},
		{"8080", "SJF", "not-a-number"},
	}
	for _, args := range cases {
		if _, _, _, ok := parseArgs(args); ok {
			t.Fatalf("parseArgs(%v): got ok=true, want false", args)
		}
	}
}
