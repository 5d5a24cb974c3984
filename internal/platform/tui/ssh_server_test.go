package tui

import (
	"net"
	"testing"
)

func TestConnLimiter(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		ops   []string // "+ip" acquires, "-ip" releases
		want  []bool   // result of each acquire, in order
	}{
		{"under limit", 2, []string{"+a", "+a"}, []bool{true, true}},
		{"over limit", 2, []string{"+a", "+a", "+a"}, []bool{true, true, false}},
		{"per address", 1, []string{"+a", "+b", "+a"}, []bool{true, true, false}},
		{"release frees a slot", 1, []string{"+a", "-a", "+a"}, []bool{true, true}},
		{"zero is unlimited", 0, []string{"+a", "+a", "+a"}, []bool{true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newConnLimiter(tt.limit)
			var got []bool
			for _, op := range tt.ops {
				ip := op[1:]
				if op[0] == '+' {
					got = append(got, l.acquire(ip))
				} else {
					l.release(ip)
				}
			}
			if len(got) != len(tt.want) {
				t.Fatalf("acquires = %v, expected %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("acquire %d = %v, expected %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConnLimiterForgetsIdleAddresses(t *testing.T) {
	l := newConnLimiter(2)
	l.acquire("10.0.0.1")
	l.release("10.0.0.1")
	if len(l.counts) != 0 {
		t.Errorf("counts = %v, released addresses should be dropped", l.counts)
	}
}

func TestRemoteIP(t *testing.T) {
	tcp := &net.TCPAddr{IP: net.ParseIP("192.168.1.7"), Port: 51234}
	if got := remoteIP(tcp); got != "192.168.1.7" {
		t.Errorf("remoteIP(tcp) = %q, the port should be dropped", got)
	}
	unix := &net.UnixAddr{Name: "/tmp/sock", Net: "unix"}
	if got := remoteIP(unix); got != "/tmp/sock" {
		t.Errorf("remoteIP(unix) = %q", got)
	}
}
