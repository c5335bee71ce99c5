package cli

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/ytget/yt-clipper/internal/command"
	"github.com/ytget/yt-clipper/internal/config"
	"github.com/ytget/yt-clipper/internal/download"
	"github.com/ytget/yt-clipper/internal/model"
	"github.com/ytget/yt-clipper/internal/platform"
	"github.com/ytget/yt-clipper/internal/timecode"
)

// StartingStatus is shown until the downloader prints something
const StartingStatus = "Starting download..."

// downloadFlags holds the local flags of the download command
type downloadFlags struct {
	formats []string
	start   string
	end     string
}

func newDownloadCommand(ro *rootOptions) *cobra.Command {
	f := &downloadFlags{}

	cmd := &cobra.Command{
		Use:   "download URL",
		Short: "Download a video, or a time range of it, without the GUI",
		Example: `  yt-clipper download https://www.youtube.com/watch?v=dQw4w9WgXcQ
  yt-clipper download -f webm -f mp4 --start 0:30 --end 1:15 https://youtu.be/dQw4w9WgXcQ`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			partial := cmd.Flags().Changed("start") || cmd.Flags().Changed("end")
			req, err := f.request(args[0], partial)
			if err != nil {
				return err
			}
			return runDownload(cmd.OutOrStdout(), ro.opts, req, ro.serviceOpts...)
		},
	}

	cmd.Flags().StringSliceVarP(&f.formats, "format", "f", []string{string(model.FormatMP4)}, "Output formats in preference order (mp4, webm)")
	cmd.Flags().StringVar(&f.start, "start", "", "Range start (SS, MM:SS or HH:MM:SS); defaults to 00:00:00 when --end is set")
	cmd.Flags().StringVar(&f.end, "end", "", "Range end (SS, MM:SS or HH:MM:SS)")

	return cmd
}

// request turns the flags into a download request. A range is attached only
// when partial is set.
func (f *downloadFlags) request(url string, partial bool) (model.DownloadRequest, error) {
	formats, err := model.ParseFormats(f.formats)
	if err != nil {
		return model.DownloadRequest{}, err
	}

	req := model.DownloadRequest{
		URL:     url,
		Formats: model.FormatSelection(formats),
	}
	if partial {
		start := f.start
		if strings.TrimSpace(start) == "" {
			start = timecode.FormatSeconds(0)
		}
		req.Range = &model.TimeRange{Start: start, End: f.end}
	}
	return req, nil
}

// runDownload runs one job to completion, rendering a spinner with the
// latest status line on out.
func runDownload(out io.Writer, opts *config.Options, req model.DownloadRequest, serviceOpts ...download.Option) error {
	args, err := command.Build(req)
	if err != nil {
		return err
	}

	dir, err := platform.EnsureDownloadDir(opts.OutputDir)
	if err != nil {
		return err
	}
	platform.CheckFreeSpace(dir)

	svc := download.NewService(opts.YtDlpPath, dir, serviceOpts...)
	job, err := svc.Start(args)
	if err != nil {
		return err
	}

	var status atomic.Value
	status.Store(StartingStatus)

	p := mpb.New(mpb.WithOutput(out), mpb.WithAutoRefresh(), mpb.WithRefreshRate(150*time.Millisecond))
	bar := p.New(0,
		mpb.SpinnerStyle(),
		mpb.PrependDecorators(decor.Name(svc.Binary()+" ")),
		mpb.AppendDecorators(decor.Any(func(decor.Statistics) string {
			return status.Load().(string)
		})),
	)

	var finished download.Event
	for ev := range job.Events() {
		switch ev.Kind {
		case download.EventOutput, download.EventError:
			if text := strings.TrimSpace(ev.Text); text != "" {
				status.Store(text)
			}
		case download.EventFinished:
			finished = ev
		}
	}

	if finished.Succeeded() {
		bar.SetTotal(-1, true)
	} else {
		bar.Abort(false)
	}
	p.Wait()

	snap := job.Snapshot()
	log.WithFields(log.Fields{
		"job":       snap.ID,
		"exit_code": snap.ExitCode,
		"elapsed":   snap.Elapsed().Round(time.Millisecond),
	}).Debug("Download command finished")

	if err := snap.Err(); err != nil {
		fmt.Fprintln(out, status.Load().(string))
		return err
	}

	color.New(color.FgGreen).Fprintf(out, "Download completed: %s\n", dir)
	return nil
}
