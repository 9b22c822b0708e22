package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	cli    *CLI
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newFixture(t *testing.T, stdin string) *fixture {
	t.Helper()
	f := &fixture{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	f.cli = NewCLI(Options{
		Output:    f.stdout,
		ErrOutput: f.stderr,
		Input:     strings.NewReader(stdin),
	})
	return f
}

func (f *fixture) run(args ...string) error {
	f.cli.rootCmd.SetArgs(args)
	return f.cli.ExecuteContext(context.Background())
}

func TestCLI_Compute(t *testing.T) {
	f := newFixture(t, "")

	err := f.run("compute", "--herd", "100", "--days", "30", "--feed", "Концентраты")

	require.NoError(t, err)
	out := f.stdout.String()
	assert.Contains(t, out, "Потребность в корме 'Концентраты'")
	assert.Contains(t, out, "Итого: 15000.00 ц")
	assert.Contains(t, out, "Вид корма: Концентраты")
	assert.Contains(t, out, "Норматив: 5 ц/гол.")
	assert.Contains(t, out, "100 гол. × 30 дн. × 5 ц/гол. = 15000.00 ц")
}

func TestCLI_Compute_JSON(t *testing.T) {
	f := newFixture(t, "")

	err := f.run("compute", "--herd", "200", "--days", "10", "--feed", "Сено", "--format", "json")

	require.NoError(t, err)
	var report struct {
		Total    string `json:"total"`
		FeedType string `json:"feedType"`
		Sections []struct {
			Summary map[string]string `json:"summary"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal(f.stdout.Bytes(), &report))
	assert.Equal(t, "30000.00", report.Total)
	assert.Equal(t, "Сено", report.FeedType)
	require.Len(t, report.Sections, 1)
	assert.Equal(t, "15 ц/гол.", report.Sections[0].Summary["Норматив"])
}

func TestCLI_Compute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "zero herd",
			args:    []string{"compute", "--herd", "0", "--days", "5"},
			wantErr: `herdSize "0" must be a positive number`,
		},
		{
			name:    "negative herd",
			args:    []string{"compute", "--herd", "-1", "--days", "5"},
			wantErr: `herdSize "-1" must be a positive number`,
		},
		{
			name:    "text days",
			args:    []string{"compute", "--herd", "5", "--days", "five"},
			wantErr: `days "five" is not a number`,
		},
		{
			name:    "unknown feed",
			args:    []string{"compute", "--herd", "5", "--days", "5", "--feed", "Солома"},
			wantErr: `feedType "Солома" is unknown`,
		},
		{
			name:    "unknown format",
			args:    []string{"compute", "--herd", "5", "--days", "5", "--format", "xml"},
			wantErr: `format "xml" is not registered`,
		},
		{
			name:    "unknown profile",
			args:    []string{"compute", "--herd", "5", "--days", "5", "--profile", "nope"},
			wantErr: "profile nope not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newFixture(t, "").run(tt.args...)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestCLI_Compute_LegacyProfileFallsBackToZero(t *testing.T) {
	f := newFixture(t, "")

	err := f.run("compute", "--herd", "5", "--days", "5", "--feed", "Солома", "--profile", "legacy", "--log-level", "warn")

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "Итого: 0.00 ц")
	assert.Contains(t, f.stderr.String(), "no norm for feed type")
}

func TestCLI_ProfilesFromSettingsFile(t *testing.T) {
	dir := t.TempDir()
	profiles := filepath.Join(dir, "profiles.ini")
	require.NoError(t, os.WriteFile(profiles, []byte("[farm]\nunknown_feed = reject\nprecision = 0\n"), 0o644))
	settings := filepath.Join(dir, "settings.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("profile: farm\nprofiles_path: "+profiles+"\n"), 0o644))

	f := newFixture(t, "")
	err := f.run("compute", "--config", settings, "--herd", "3", "--days", "3", "--feed", "Сено")

	require.NoError(t, err)
	assert.Contains(t, f.stdout.String(), "Итого: 135 ц")
}

func TestCLI_Compare(t *testing.T) {
	f := newFixture(t, "")

	err := f.run("compare", "--current", "15000", "--feed", "Концентраты")

	require.NoError(t, err)
	out := f.stdout.String()
	assert.Contains(t, out, "Сравнение потребности в кормах (Концентраты)")
	assert.Contains(t, out, "Позапрошлый год")
	assert.Contains(t, out, "51000.00")
	assert.Contains(t, out, "29500.00")
	assert.Contains(t, out, "15000.00")
}

func TestCLI_NormsAndHistory(t *testing.T) {
	f := newFixture(t, "")
	require.NoError(t, f.run("norms"))
	for _, s := range []string{"Концентраты", "Сено", "Силос"} {
		assert.Contains(t, f.stdout.String(), s)
	}

	f = newFixture(t, "")
	require.NoError(t, f.run("history"))
	assert.Contains(t, f.stdout.String(), "Позапрошлый год")
	assert.Contains(t, f.stdout.String(), "29500")
}

func TestCLI_Chart(t *testing.T) {
	t.Run("from computed requirement", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "chart.html")
		f := newFixture(t, "")

		err := f.run("chart", "--herd", "50", "--days", "7", "--feed", "Силос", "--out", path)

		require.NoError(t, err)
		html, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(html), "Сравнение потребности в кормах (Силос)")
		assert.Contains(t, string(html), "7,000 ц")
		assert.Contains(t, f.stdout.String(), path)
	})

	t.Run("to stdout", func(t *testing.T) {
		f := newFixture(t, "")

		err := f.run("chart", "--current", "42", "--out", "-")

		require.NoError(t, err)
		assert.Contains(t, f.stdout.String(), "<svg")
		assert.Contains(t, f.stdout.String(), "42 ц")
	})

	t.Run("nothing to compare", func(t *testing.T) {
		err := newFixture(t, "").run("chart")
		assert.ErrorContains(t, err, "nothing to compare")
	})

	t.Run("current excludes herd", func(t *testing.T) {
		err := newFixture(t, "").run("chart", "--current", "1", "--herd", "1")
		assert.Error(t, err)
	})
}

func TestCLI_Form(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.html")
	stdin := strings.Join([]string{
		"0", "5", "", // rejected, asked again
		"100", "30", "1",
		path,
		"y",
		"200", "10", "Сено",
		"",
		"n",
	}, "\n") + "\n"
	f := newFixture(t, stdin)

	err := f.run("form")

	require.NoError(t, err)
	out := f.stdout.String()
	assert.Contains(t, out, "Нормативы потребности на 1 голову в день")
	assert.Contains(t, out, `Ошибка ввода: herdSize "0" must be a positive number`)
	assert.Contains(t, out, "Потребность в корме 'Концентраты': 15000.00 ц")
	assert.Contains(t, out, "Расчет: 100 гол. × 30 дн. × 5 ц/гол. = 15000.00 ц")
	assert.Contains(t, out, "Потребность в корме 'Сено': 30000.00 ц")
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestCLI_Form_EndOfInput(t *testing.T) {
	f := newFixture(t, "100\n")

	err := f.run("form")

	assert.NoError(t, err)
}

func TestCLI_Form_ReadError(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cli := NewCLI(Options{
		Output:    stdout,
		ErrOutput: stderr,
		Input: io.MultiReader(
			strings.NewReader("100\n30\n1\n\n"),
			iotest.ErrReader(errors.New("terminal detached")),
		),
	})
	cli.rootCmd.SetArgs([]string{"form"})

	err := cli.ExecuteContext(context.Background())

	assert.ErrorContains(t, err, "terminal detached")
	assert.Contains(t, stdout.String(), "Потребность в корме 'Концентраты': 15000.00 ц")
}
