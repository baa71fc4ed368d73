package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rotblauer/kinecalc/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kinecalc.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScenario_Default(t *testing.T) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	code := runScenario(config.New(), writeConfig(t, "# defaults\n"), out, errOut)
	if code != 0 {
		t.Fatalf("got exit %d: %s", code, errOut)
	}
	want := "Corrected New Velocity: 48880.00 km/h\n" +
		"Corrected New Distance: 10000.00 km\n" +
		"Corrected Remaining Fuel: 3200.00 kg\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected error output %q", errOut)
	}
}

func TestRunScenario_FuelDeficit(t *testing.T) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	code := runScenario(config.New(), writeConfig(t, "fuelBurnRate: 2\n"), out, errOut)
	if code != 0 {
		t.Fatalf("got exit %d: %s", code, errOut)
	}
	if !strings.Contains(out.String(), "Corrected Remaining Fuel: -2200.00 kg") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRunScenario_Errors(t *testing.T) {
	cases := []struct {
		name   string
		config string
		env    map[string]string
		want   string
	}{
		{
			name:   "negative env",
			config: "# defaults\n",
			env:    map[string]string{"KINECALC_TIME": "-1"},
			want:   "Error: Time cannot be negative: received -1 seconds\n",
		},
		{
			name:   "string in file",
			config: "velocity: fast\n",
			want:   "Error: invalid input for Velocity: expected a number in km/h, got string\n",
		},
		{
			name:   "NaN env",
			config: "# defaults\n",
			env:    map[string]string{"KINECALC_ACCELERATION": "NaN"},
			want:   "Error: invalid input for Acceleration: expected a number in m/s^2, got NaN\n",
		},
		{
			name:   "first of several",
			config: "initialDistance: -1\nremainingFuel: -1\n",
			want:   "Error: Initial Distance cannot be negative: received -1 km\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for k, v := range c.env {
				t.Setenv(k, v)
			}
			out, errOut := new(bytes.Buffer), new(bytes.Buffer)
			code := runScenario(config.New(), writeConfig(t, c.config), out, errOut)
			if code != 1 {
				t.Errorf("got exit %d, want 1", code)
			}
			if out.Len() != 0 {
				t.Errorf("results printed on failure: %q", out)
			}
			if errOut.String() != c.want {
				t.Errorf("got %q, want %q", errOut.String(), c.want)
			}
		})
	}
}

func TestRunScenario_UnknownOption(t *testing.T) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	code := runScenario(config.New(), writeConfig(t, "gravity: 9.81\n"), out, errOut)
	if code != 1 {
		t.Errorf("got exit %d, want 1", code)
	}
	if !strings.HasPrefix(errOut.String(), "Error: unrecognized option") || !strings.Contains(errOut.String(), "gravity") {
		t.Errorf("unexpected error output %q", errOut)
	}
	if out.Len() != 0 {
		t.Errorf("results printed on failure: %q", out)
	}
}

func TestRunValidate(t *testing.T) {
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	if code := runValidate(config.New(), writeConfig(t, "# defaults\n"), out, errOut); code != 0 {
		t.Fatalf("got exit %d: %s", code, errOut)
	}
	if out.String() != "ok\n" {
		t.Errorf("got %q", out)
	}

	out.Reset()
	errOut.Reset()
	code := runValidate(config.New(), writeConfig(t, "velocity: -1\ntime: soon\nfuelBurnRate: -3\n"), out, errOut)
	if code != 1 {
		t.Errorf("got exit %d, want 1", code)
	}
	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d error lines, want 3: %q", len(lines), errOut)
	}
	for i, param := range []string{"Velocity", "Time", "Fuel Burn Rate"} {
		if !strings.HasPrefix(lines[i], "Error: ") || !strings.Contains(lines[i], param) {
			t.Errorf("line %d: %q does not report %s", i, lines[i], param)
		}
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRootCmd_NonNumericFlag(t *testing.T) {
	oldLogger := slog.Default()
	defer slog.SetDefault(oldLogger)
	var code int
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetArgs([]string{"--config", writeConfig(t, "# defaults\n"), "--velocity", "fast"})
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("velocity", "10000")
	}()

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected cobra error: %v", err)
	}
	if code != 1 {
		t.Errorf("got exit %d, want 1", code)
	}
	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out)
	}
	want := "Error: invalid input for Velocity: expected a number in km/h, got string\n"
	if errOut.String() != want {
		t.Errorf("got %q, want %q", errOut.String(), want)
	}
}
