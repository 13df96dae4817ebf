package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"flacup/internal/reencode"
)

// newProgressFunc selects a progress collaborator for the encode phase: an
// interactive bar when stderr is a terminal, otherwise throttled plain
// lines so piped and logged output stays readable.
func newProgressFunc(out io.Writer, label string) reencode.ProgressFunc {
	if file, ok := out.(*os.File); ok && stdoutIsTerminal(file) {
		return barProgress(out, label)
	}
	throttler := reencode.NewThrottler(func(current, total int, final bool) {
		fmt.Fprintf(out, "%s %d of %d files\n", label, current, total)
	}, time.Second)
	return func(current, total int, final bool) {
		if total == 0 {
			return
		}
		throttler.Report(current, total, final)
	}
}

func stdoutIsTerminal(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func barProgress(out io.Writer, label string) reencode.ProgressFunc {
	var bar *progressbar.ProgressBar
	return func(current, total int, final bool) {
		if total == 0 {
			return
		}
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(out),
				progressbar.OptionSetDescription(label),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		_ = bar.Set(current)
		if final {
			_ = bar.Finish()
			fmt.Fprintln(out)
		}
	}
}
