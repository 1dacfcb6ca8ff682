package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Thirdwinter/foamshot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int

	cmd := &cobra.Command{
		Use:   "foamshot",
		Short: "interactive screen capture for wlr-layer-shell compositors",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := buildConfig()
			log := foamshot.NewLogger(verbosity)

			if err := foamshot.Run(context.Background(), cfg, log); err != nil {
				var fatal *foamshot.FatalError
				if errors.As(err, &fatal) && !cfg.DisableNotify {
					foamshot.NewNotifier(log).NotifyFatal(fatal.Error())
				}
				log.Error().Err(err).Msg("foamshot exited with a fatal error")
				return fmt.Errorf("foamshot: %w", err)
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("output-dir", ".", "directory the screenshot is written to")
	flags.String("output-file", "%Y%m%d_%H%M%S_foamshot.png", "output filename (strftime placeholders)")
	flags.Bool("show-cursor", false, "include the pointer cursor in the capture")
	flags.Bool("disable-copy", false, "do not copy the result to the clipboard")
	flags.Bool("disable-freeze", false, "do not freeze the desktop while selecting")
	flags.Bool("disable-notify", false, "do not send desktop notifications")
	flags.Bool("jump-to-full-screen", false, "skip selection, capture the current monitor")
	flags.Bool("enter-edit-mode", false, "enter edit mode immediately after the initial drag")
	flags.Int("edit-threshold", 8, "corner/edge hit-test width, in pixels")
	flags.Int("jpeg-quality", 100, "JPEG quality, used when the output extension is .jpg/.jpeg")
	flags.CountVarP(&verbosity, "verbose", "v", "increase log verbosity")

	viper.BindPFlags(flags)
	viper.SetEnvPrefix("foamshot")
	viper.AutomaticEnv()

	cobra.OnInitialize(func() {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "foamshot"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
		_ = viper.ReadInConfig()
	})

	return cmd
}

func buildConfig() foamshot.Config {
	cfg := foamshot.DefaultConfig()
	cfg.OutputDir = viper.GetString("output-dir")
	cfg.OutputFile = viper.GetString("output-file")
	cfg.ShowCursor = viper.GetBool("show-cursor")
	cfg.DisableCopy = viper.GetBool("disable-copy")
	cfg.DisableFreeze = viper.GetBool("disable-freeze")
	cfg.DisableNotify = viper.GetBool("disable-notify")
	cfg.JumpToFullScreen = viper.GetBool("jump-to-full-screen")
	cfg.EnterEditMode = viper.GetBool("enter-edit-mode")
	if v := viper.GetInt("edit-threshold"); v > 0 {
		cfg.EditThreshold = v
	}
	if v := viper.GetInt("jpeg-quality"); v > 0 {
		cfg.JPEGQuality = v
	}
	return cfg
}
