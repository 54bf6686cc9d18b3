package cmd

import (
	"strings"
	"testing"
)

func TestVersionCommand(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		commit      string
		date        string
		wantContain []string
	}{
		{
			name:    "dev build without ldflags",
			version: "",
			commit:  "",
			date:    "",
			wantContain: []string{
				"otptick version dev",
				"commit: unknown",
				"built: unknown",
			},
		},
		{
			name:    "release build with ldflags",
			version: "1.0.0",
			commit:  "abc1234",
			date:    "2026-08-25T12:00:00Z",
			wantContain: []string{
				"otptick version 1.0.0",
				"commit: abc1234",
				"built: 2026-08-25T12:00:00Z",
			},
		},
		{
			name:    "partial ldflags - version only",
			version: "1.0.0",
			commit:  "",
			date:    "",
			wantContain: []string{
				"otptick version 1.0.0",
				"commit: unknown",
				"built: unknown",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldVersion, oldCommit, oldDate := version, commit, buildDate
			version, commit, buildDate = tt.version, tt.commit, tt.date
			defer func() {
				version, commit, buildDate = oldVersion, oldCommit, oldDate
			}()

			cmd := NewVersionCommand()
			output, err := executeCommand(cmd)
			if err != nil {
				t.Fatalf("command failed: %v", err)
			}

			for _, want := range tt.wantContain {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q\ngot:\n%s", want, output)
				}
			}
		})
	}
}

func TestVersionCommandIntegration(t *testing.T) {
	rootCmd := newTestRootCommand()
	rootCmd.AddCommand(NewVersionCommand())

	output, err := executeCommand(rootCmd, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if !strings.Contains(output, "otptick version") {
		t.Errorf("version output missing 'otptick version', got: %s", output)
	}
}
