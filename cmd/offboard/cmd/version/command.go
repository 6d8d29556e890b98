// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/offboard/internal/appcontext"
)

// NewCommand creates the version command using app context.
func NewCommand(app appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show version information for the offboard CLI.`,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("offboard version %s\n", app.Version())
			fmt.Printf("commit: %s\n", app.Commit())
			fmt.Printf("built: %s\n", app.Date())
			fmt.Printf("built by: %s\n", app.BuiltBy())
			fmt.Printf("go version: %s\n", runtime.Version())
			fmt.Printf("platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
