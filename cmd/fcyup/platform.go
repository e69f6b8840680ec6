package main

import (
	"fmt"

	"github.com/The-Fency-Project/fcyup/internal/config"
	"github.com/The-Fency-Project/fcyup/internal/platform"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPlatformCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Show the detected platform",
		Long: `Print the platform used to pick release artifacts, as os/arch,
followed by the raw values reported by the host.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(v)
			if err != nil {
				return err
			}

			info, err := settings.ResolvePlatform(cmd.Context(), platform.NewDetector())
			if err != nil {
				return fmt.Errorf("detect platform: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, TitleStyle.Render(info.String()))
			fmt.Fprintln(out, SubtitleStyle.Render(fmt.Sprintf("raw: %s %s", info.OSRaw, info.ArchRaw)))
			return nil
		},
	}
}
