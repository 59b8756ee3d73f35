package raster

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pumltools/svg2puml/pkg/errors"
)

// Convert rasterizes the SVG at src into a PNG at dst using tool t.
// The process's stderr is merged into stdout so all diagnostics flow through
// a single channel; every output line is logged at debug level under the
// tool's name. Convert blocks until the process exits. A non-zero exit code
// or a failure to launch yields a PROCESS_ERROR.
func (t Tool) Convert(ctx context.Context, logger *log.Logger, src, dst string) error {
	if logger == nil {
		logger = log.Default()
	}

	cmd := t.Command(ctx, src, dst)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	runErr := cmd.Run()

	scanner := bufio.NewScanner(bytes.NewReader(out.Bytes()))
	for scanner.Scan() {
		logger.Debugf("%s: %s", t, scanner.Text())
	}

	if runErr != nil {
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return errors.Wrap(errors.ErrCodeProcess, runErr, "%s failed: %s", t, msg)
		}
		return errors.Wrap(errors.ErrCodeProcess, runErr, "%s failed", t)
	}
	return nil
}
