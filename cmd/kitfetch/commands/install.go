package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/kitfetch/internal/core/domain"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install <platform> <version> <target> <toolchain>",
		Short: "Download and extract one kit into the current directory",
		Long: `Download and extract one kit into the current directory.

All four coordinates are required, for example:

  kitfetch install windows 5.12.4 desktop win64_msvc2017_64

The platform "auto" selects the platform matching the host operating system.
Archives are fetched one at a time and deleted after extraction.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			platform, err := parsePlatformArg(args[0])
			if err != nil {
				return err
			}
			v, err := domain.ParseVersion(args[1])
			if err != nil {
				return err
			}
			return c.app.Install(cmd.Context(), domain.Selection{
				Platform:  platform,
				Version:   &v,
				Target:    args[2],
				Toolchain: args[3],
			})
		},
	}
}

// parsePlatformArg parses a platform argument, resolving "auto" to the host
// operating system.
func parsePlatformArg(arg string) (domain.Platform, error) {
	if arg == "auto" {
		return hostPlatform(), nil
	}
	return domain.ParsePlatform(arg)
}

func hostPlatform() domain.Platform {
	switch runtime.GOOS {
	case "darwin":
		return domain.PlatformMac
	case "windows":
		return domain.PlatformWindows
	default:
		return domain.PlatformLinux
	}
}
