package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/mittwald/modelprobe/pkg/cli"
	"github.com/mittwald/modelprobe/pkg/status"
	"github.com/spf13/cobra"
)

func init() {
	checkCmd.Flags().String("address", cli.DefaultAPIAddress, "address of the running probe (http://host:port or unix:///path/to.sock)")
	checkCmd.Flags().Duration("timeout", 5*time.Second, "request timeout")
	checkCmd.Flags().Bool("raw", false, "print the response body as returned by the probe")
	checkCmd.Flags().Bool("exit-with-status", false, "exit with status code 1 if the model path is absent or the probe failed")

	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Query a running probe",
	Long:  "This command queries a running modelprobe and prints the model directory status it reports.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		address, _ := cmd.Flags().GetString("address")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		raw, _ := cmd.Flags().GetBool("raw")
		exitWithStatus, _ := cmd.Flags().GetBool("exit-with-status")

		absentMessage, err := configuredAbsentMessage(cmd)
		if err != nil {
			return err
		}

		resp := cli.NewAPIClient(address).WithTimeout(timeout).WithAbsentMessage(absentMessage).Status()

		if raw {
			if err := resp.Print(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to print output: %w", err)
			}
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), renderStatus(address, resp))
		}

		if exitWithStatus && !resp.PathExists() {
			os.Exit(1)
		}

		return nil
	},
}

func renderStatus(address string, resp *cli.StatusResponse) string {
	switch {
	case resp.Err() != nil:
		return renderError(resp.Err())
	case resp.PathExists():
		return renderFound(address, resp)
	default:
		return renderAbsent(address)
	}
}

// configuredAbsentMessage renders the absent template from the same
// configuration the probe is started with, so custom templates are recognised.
func configuredAbsentMessage(cmd *cobra.Command) (string, error) {
	ignitionConfig, err := loadIgnitionConfig(cmd)
	if err != nil {
		return "", fmt.Errorf("failed to load configuration: %w", err)
	}

	renderer, err := status.NewRenderer(ignitionConfig.Server.FoundTemplate, ignitionConfig.Server.AbsentTemplate)
	if err != nil {
		return "", err
	}

	return renderer.Absent(ignitionConfig.Server.ModelDirectory)
}
