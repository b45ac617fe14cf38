package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/payrawsa/pdf-to-text/pkg/ocr"
)

var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
	buildBy   = "unknown"
)

// SetVersionInfo sets the version information from build-time variables
func SetVersionInfo(v, commit, time, by string) {
	if v != "" {
		version = v
	}
	if commit != "" {
		gitCommit = commit
	}
	if time != "" {
		buildTime = time
	}
	if by != "" {
		buildBy = by
	}
}

// GetVersionInfo returns the current version string
func GetVersionInfo() string {
	return version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display detailed version information including build details and the detected Tesseract version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", cmd.Root().Name(), version)
		fmt.Printf("Git commit: %s\n", gitCommit)
		fmt.Printf("Built: %s by %s\n", buildTime, buildBy)
		fmt.Printf("Go version: %s\n", runtime.Version())
		fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

		if tv := ocr.Version(); tv != "" {
			fmt.Printf("Tesseract: %s\n", tv)
		} else {
			fmt.Println("Tesseract: not detected")
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
