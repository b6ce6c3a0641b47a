package archive

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.trai.ch/kitfetch/internal/core/domain"
	"go.trai.ch/zerr"
)

// Extractor implements ports.Extractor by shelling out to the configured
// extraction tool.
type Extractor struct {
	tool string
	args []string
}

// NewExtractor creates an Extractor from the configured tool and arguments.
func NewExtractor(settings *domain.Settings) *Extractor {
	return &Extractor{
		tool: settings.ExtractTool,
		args: settings.ExtractArgs,
	}
}

// Extract runs the tool against the archive at path and waits for it. The
// tool's combined output is captured and attached to the error on failure.
func (e *Extractor) Extract(ctx context.Context, path string) error {
	args := make([]string, 0, len(e.args)+1)
	args = append(args, e.args...)
	args = append(args, path)

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, e.tool, args...) //nolint:gosec // tool comes from the user's own config
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return errors.Join(domain.ErrInterrupted, err)
		}
		detail := zerr.With(zerr.Wrap(err, "extraction tool failed"), "tool", e.tool)
		if diag := strings.TrimSpace(output.String()); diag != "" {
			detail = zerr.With(detail, "output", diag)
		}
		return errors.Join(domain.ErrExtractionFailed, detail)
	}

	return nil
}
