package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	colour "github.com/fatih/color"
)

const (
	plusEight = "Fri Jan 12 2018 20:15:13 GMT+0800 (+08)"
	utcEvent  = "Fri Jan 12 2018 20:15:13 GMT+0000 (+00)"
)

// execute runs a fresh root command and captures its output
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOCALTIME_TIMEZONE", "")
	colour.NoColor = true

	var stdout, stderr bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunTerminal(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "without timezone",
			args: []string{plusEight, "-l", "UTC"},
			want: "12:15 PM\nFri Jan 12 2018 12:15:13 GMT+0000\n",
		},
		{
			name: "timezone supplied but disabled",
			args: []string{plusEight, "-l", "UTC", "-z", "Australia/Sydney", "--enable-timezone=false"},
			want: "12:15 PM\nFri Jan 12 2018 12:15:13 GMT+0000\n",
		},
		{
			name: "timezone",
			args: []string{utcEvent, "-l", "UTC", "-z", "Australia/Sydney"},
			want: "7:15 AM\nSat Jan 13 2018 07:15:13 GMT+1100 (Australia/Sydney)\n",
		},
		{
			name: "timezone, military time",
			args: []string{"Fri Jan 12 2018 20:15:13 GMT-0800", "-l", "UTC", "-z", "US/Alaska", "-m"},
			want: "19:15\nFri Jan 12 2018 19:15:13 GMT-0900 (US/Alaska)\n",
		},
		{
			name: "quiet",
			args: []string{utcEvent, "-l", "UTC", "-z", "US/Hawaii", "-q"},
			want: "10:15 AM\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("output = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRunTimezoneFromEnvironment(t *testing.T) {
	colour.NoColor = true
	t.Setenv("LOCALTIME_TIMEZONE", "Australia/Sydney")

	var stdout bytes.Buffer
	rootCmd := newRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{utcEvent, "-l", "UTC", "-q", "-m"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "07:15\n" {
		t.Errorf("output = %q, want %q", stdout.String(), "07:15\n")
	}
}

func TestRunFallbackWarning(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "enabled without zone",
			args:       []string{utcEvent, "-l", "UTC", "-e", "-v"},
			wantStderr: "No timezone set, rendered in the local zone (UTC)",
		},
		{
			name:       "unknown zone",
			args:       []string{utcEvent, "-l", "UTC", "-z", "Mars/Olympus_Mons", "-v"},
			wantStderr: `Timezone "Mars/Olympus_Mons" could not be resolved`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantStderr)
			}
			if !strings.Contains(stdout, "Fri Jan 12 2018 20:15:13 GMT+0000\n") {
				t.Errorf("stdout = %q, want local rendering", stdout)
			}
			if strings.Contains(stdout, "undefined") {
				t.Errorf("stdout = %q, should not contain undefined", stdout)
			}
			if !strings.Contains(stdout, "Fallback:         true") {
				t.Errorf("stdout = %q, want verbose details", stdout)
			}
		})
	}
}

func TestRunFallbackIsSilentByDefault(t *testing.T) {
	_, stderr, err := execute(t, utcEvent, "-l", "UTC", "-e")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}
}

func TestRunJSON(t *testing.T) {
	stdout, _, err := execute(t, utcEvent, "-l", "UTC", "-z", "Australia/Sydney", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got jsonOutput
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("JSON unmarshal error = %v", err)
	}

	if got.Instant != 1515788113000 {
		t.Errorf("instant = %d, want 1515788113000", got.Instant)
	}
	if got.UTC != "2018-01-12T20:15:13Z" {
		t.Errorf("utc = %q", got.UTC)
	}
	if got.Zone != "Australia/Sydney" || !got.Named || got.Fallback {
		t.Errorf("zone = %q named = %v fallback = %v", got.Zone, got.Named, got.Fallback)
	}
	if got.Full != "Sat Jan 13 2018 07:15:13 GMT+1100 (Australia/Sydney)" {
		t.Errorf("full = %q", got.Full)
	}
	if got.Short != "7:15 AM" {
		t.Errorf("short = %q", got.Short)
	}
	if got.Release != nil {
		t.Errorf("release = %+v, want nil", got.Release)
	}
}

func TestRunCI(t *testing.T) {
	stdout, _, err := execute(t, utcEvent, "-l", "UTC", "-z", "Mars/Olympus_Mons", "--ci")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(stdout, "8:15 PM\n") {
		t.Errorf("output should start with the short time, got %q", stdout)
	}
	for _, want := range []string{
		"::group::🕒 Local Time",
		"::endgroup::",
		"::warning title=Timezone Fallback::",
		"::notice title=Local Time::Fri Jan 12 2018 20:15:13 GMT+0000\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRunDefaultsToNow(t *testing.T) {
	original := now
	now = func() time.Time { return time.Date(2018, 1, 12, 0, 5, 0, 0, time.UTC) }
	t.Cleanup(func() { now = original })

	stdout, _, err := execute(t, "-l", "UTC", "-q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "12:05 AM\n" {
		t.Errorf("output = %q, want %q", stdout, "12:05 AM\n")
	}
}

func TestRunVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "2024-07-25", "abc123")
	t.Cleanup(func() { SetVersionInfo("dev", "unknown", "unknown") })

	stdout, _, err := execute(t, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "localtime 1.2.3\nBuild time: 2024-07-25\nGit commit: abc123\n"
	if stdout != want {
		t.Errorf("output = %q, want %q", stdout, want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"invalid instant", []string{"next tuesday"}, "invalid instant"},
		{"invalid local zone", []string{utcEvent, "-l", "Nowhere/Special"}, "invalid local zone"},
		{"too many arguments", []string{utcEvent, utcEvent}, "accepts at most 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

// TestDetectGitHubToken tests token detection
func TestDetectGitHubToken(t *testing.T) {
	if got := detectGitHubToken("ghp_test123"); got != "ghp_test123" {
		t.Errorf("detectGitHubToken() = %v, want ghp_test123", got)
	}
}
