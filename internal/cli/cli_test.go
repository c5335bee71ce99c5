package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/model"
)

const (
	helperEnv         = "GO_WANT_HELPER_PROCESS"
	helperScenarioEnv = "HELPER_SCENARIO"
	helperArgsFile    = "args.txt"
)

func helperService(scenario string) download.Option {
	return download.WithCommandFactory(func(name string, args ...string) *exec.Cmd {
		cs := append([]string{"-test.run=TestHelperProcess", "--", name}, args...)
		cmd := exec.Command(os.Args[0], cs...)
		cmd.Env = append(os.Environ(), helperEnv+"=1", helperScenarioEnv+"="+scenario)
		return cmd
	})
}

// TestHelperProcess is not a real test; it stands in for yt-dlp
func TestHelperProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}

	// record the arguments after "--" in the working directory
	args := os.Args
	for i, a := range args {
		if a == "--" {
			args = args[i+1:]
			break
		}
	}
	_ = os.WriteFile(helperArgsFile, []byte(fmt.Sprint(args)), 0644)

	switch os.Getenv(helperScenarioEnv) {
	case "ok":
		fmt.Fprint(os.Stdout, "[download]  50.0%\r[download] 100.0%")
		os.Exit(0)
	case "fail":
		fmt.Fprint(os.Stderr, "ERROR: Video unavailable")
		os.Exit(1)
	default:
		os.Exit(2)
	}
}

func TestDownloadFlagsRequest(t *testing.T) {
	tests := []struct {
		name      string
		flags     downloadFlags
		partial   bool
		wantFmts  []model.Format
		wantRange *model.TimeRange
		wantErr   bool
	}{
		{
			name:     "full video",
			flags:    downloadFlags{formats: []string{"mp4"}},
			wantFmts: []model.Format{model.FormatMP4},
		},
		{
			name:      "range with both bounds",
			flags:     downloadFlags{formats: []string{"WEBM", "mp4", "webm"}, start: "0:30", end: "1:15"},
			partial:   true,
			wantFmts:  []model.Format{model.FormatWEBM, model.FormatMP4},
			wantRange: &model.TimeRange{Start: "0:30", End: "1:15"},
		},
		{
			name:      "end only starts at zero",
			flags:     downloadFlags{formats: []string{"mp4"}, end: "45"},
			partial:   true,
			wantFmts:  []model.Format{model.FormatMP4},
			wantRange: &model.TimeRange{Start: "00:00:00", End: "45"},
		},
		{
			name:    "unknown format",
			flags:   downloadFlags{formats: []string{"mkv"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := tt.flags.request("https://example.com/v", tt.partial)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "https://example.com/v", req.URL)
			assert.Equal(t, tt.wantFmts, req.Formats)
			assert.Equal(t, tt.wantRange, req.Range)
		})
	}
}

func TestRunDownload_Success(t *testing.T) {
	dir := t.TempDir()
	opts := &config.Options{YtDlpPath: "yt-dlp", OutputDir: dir}
	req := model.DownloadRequest{
		URL:     "https://example.com/v",
		Formats: []model.Format{model.FormatMP4},
		Range:   &model.TimeRange{Start: "5", End: "1:00"},
	}

	var out bytes.Buffer
	err := runDownload(&out, opts, req, helperService("ok"))
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Download completed: "+dir)

	recorded, err := os.ReadFile(filepath.Join(dir, helperArgsFile))
	require.NoError(t, err)
	assert.Contains(t, string(recorded), "--download-sections *00:00:05-00:01:00")
	assert.Contains(t, string(recorded), "https://example.com/v")
}

func TestRunDownload_Failure(t *testing.T) {
	opts := &config.Options{OutputDir: t.TempDir()}
	req := model.DownloadRequest{URL: "https://example.com/v", Formats: []model.Format{model.FormatMP4}}

	var out bytes.Buffer
	err := runDownload(&out, opts, req, helperService("fail"))

	var pfe *model.ProcessFailedError
	require.True(t, errors.As(err, &pfe))
	assert.Equal(t, 1, pfe.ExitCode)
	assert.Contains(t, out.String(), "Error: ERROR: Video unavailable")
}

func TestRunDownload_BuildErrors(t *testing.T) {
	opts := &config.Options{OutputDir: t.TempDir()}

	err := runDownload(&bytes.Buffer{}, opts, model.DownloadRequest{URL: "https://example.com/v"})
	assert.ErrorIs(t, err, model.ErrNoFormatSelected)

	err = runDownload(&bytes.Buffer{}, opts, model.DownloadRequest{
		URL:     "https://example.com/v",
		Formats: []model.Format{model.FormatMP4},
		Range:   &model.TimeRange{Start: "1:00", End: "0:30"},
	})
	assert.ErrorIs(t, err, model.ErrInvertedOrEmptyRange)
}

func TestVersionCommand(t *testing.T) {
	cmd := NewRootCommand("1.2.3")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "yt-clipper 1.2.3\n", out.String())
}

func TestDownloadCommand_RequiresURL(t *testing.T) {
	cmd := NewRootCommand("test")
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"download"})

	assert.Error(t, cmd.Execute())
}
