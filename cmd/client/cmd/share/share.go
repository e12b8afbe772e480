// cmd/client/cmd/share/share.go
package share

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"healthsync/cmd/client/cmd/types"
	"healthsync/internal/app/client"
)

var qrPath string

var ShareCmd = &cobra.Command{
	Use:   "share",
	Short: "Create a read-only share link for the health record",
	Long: `Build a share link for the current health record.

The whole snapshot is compressed and encoded into the link itself; no
data is stored on any server. Anyone with the link can view the
snapshot, so share it carefully.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("app is not initialized")
		}

		if qrPath != "" {
			url, err := app.ShareQRCode(qrPath)
			if err != nil {
				return err
			}
			color.Green("QR code written to %s", qrPath)
			fmt.Println(url)
			return nil
		}

		url, err := app.ShareURL()
		if err != nil {
			return err
		}

		fmt.Println(url)
		return nil
	},
}

func init() {
	ShareCmd.Flags().StringVar(&qrPath, "qr", "", "also write a QR code PNG to this path")
}
