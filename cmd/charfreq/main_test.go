package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cmd := newRootCmd()
	if args == nil {
		// Keep cobra from falling back to os.Args inside the test binary.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootPlainFromArgument(t *testing.T) {
	out, err := runCLI(t, "", "cba")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a: 1\nb: 1\nc: 1\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRootPlainFromStdin(t *testing.T) {
	out, err := runCLI(t, "hello world", "--sort-by", "count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "l: 3\no: 2\nd: 1\ne: 1\nh: 1\nr: 1\nw: 1\n"
	if out != want {
		t.Fatalf("unexpected output: %q (want %q)", out, want)
	}
}

func TestRootEmptyInput(t *testing.T) {
	out, err := runCLI(t, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no output, got %q", out)
	}
}

func TestRootTopN(t *testing.T) {
	out, err := runCLI(t, "", "aaa", "-n", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a: 3\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRootPercent(t *testing.T) {
	out, err := runCLI(t, "", "aab", "-p", "-s", "count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a: 66.67\nb: 33.33\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRootPercentWinsOverTopN(t *testing.T) {
	out, err := runCLI(t, "", "aab", "-n", "1", "-p", "-s", "count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "a: 66.67\nb: 33.33\n" {
		t.Fatalf("expected percent output, got %q", out)
	}
}

func TestRootThresholdFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"more than", []string{"aabbbc", "-g", "1"}, "a: 2\nb: 3\n"},
		{"less than", []string{"aabbbc", "-l", "3"}, "a: 2\nc: 1\n"},
		{"exactly", []string{"aabbbc", "-e", "3"}, "b: 3\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := runCLI(t, "", tc.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tc.want {
				t.Fatalf("unexpected output: %q (want %q)", out, tc.want)
			}
		})
	}
}

func TestRootRejectsInvalidSortKey(t *testing.T) {
	if _, err := runCLI(t, "", "abc", "--sort-by", "frequency"); err == nil {
		t.Fatal("expected error for invalid sort key")
	}
}

func TestRootRejectsNegativeThreshold(t *testing.T) {
	if _, err := runCLI(t, "", "abc", "-n", "-1"); err == nil {
		t.Fatal("expected error for negative top-n")
	}
}

func TestChartSubcommand(t *testing.T) {
	out, err := runCLI(t, "", "chart", "aaab", "--width", "20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 chart lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "a 3 ") {
		t.Fatalf("unexpected first chart line: %q", lines[0])
	}
}
