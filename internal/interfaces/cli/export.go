package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lite-lake/cfman/internal/infrastructure/export"
)

var (
	exportZoneName   string
	exportOutputPath string
)

var exportCmd = &cobra.Command{
	Use:   "export-dns-zone",
	Short: "Export a zone to a zone file",
	Long:  "Export DNS records of a zone to a BIND9-style file.",
	Run: func(cmd *cobra.Command, args []string) {
		runExport()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportZoneName, "zone-name", "", "Zone name in Cloudflare")
	exportCmd.Flags().StringVarP(&exportOutputPath, "output", "o", "",
		"Output file path (defaults to <zone-name>.zone)")
	exportCmd.MarkFlagRequired("zone-name")
}

func runExport() {
	client, err := newGateway()
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	zoneID, err := client.ZoneID(ctx, exportZoneName)
	if err != nil {
		fail(err)
	}

	zoneText, err := client.ExportZone(ctx, zoneID)
	if err != nil {
		fail(err)
	}

	path := exportOutputPath
	if path == "" {
		path = export.DefaultPath(exportZoneName)
	}

	writer := export.NewWriter(path)
	if err := writer.Write([]byte(zoneText)); err != nil {
		fail(err)
	}

	echoJSON(map[string]string{"status": "ok", "file": writer.Path()})
}
