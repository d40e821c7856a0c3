package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mujtaba-kazmi2006/nunno-backend/internal/api"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s (%s/%s)\n", api.ServiceName, api.Version, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
