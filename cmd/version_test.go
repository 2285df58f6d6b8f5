package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"
)

func TestWriteVersion(t *testing.T) {
	tests := []struct {
		name string
		info *debug.BuildInfo
		want string
		skip string
	}{
		{name: "no build info", info: nil, skip: "commit:"},
		{
			name: "clean checkout",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef0123"},
				{Key: "vcs.modified", Value: "false"},
			}},
			want: "commit: 0123456789ab\n",
		},
		{
			name: "dirty checkout",
			info: &debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
				{Key: "vcs.modified", Value: "true"},
			}},
			want: "commit: abc123-dirty\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			writeVersion(&buf, tt.info)
			out := buf.String()
			if !strings.HasPrefix(out, "pnasite "+Version+" (") {
				t.Errorf("first line = %q", out)
			}
			if tt.want != "" && !strings.Contains(out, tt.want) {
				t.Errorf("output %q missing %q", out, tt.want)
			}
			if tt.skip != "" && strings.Contains(out, tt.skip) {
				t.Errorf("output %q should not contain %q", out, tt.skip)
			}
		})
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"serve": false, "export": false, "init": false, "contact": false, "version": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}
