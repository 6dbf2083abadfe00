package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	recordsZoneName string
	recordsPageSize int
)

var listRecordsCmd = &cobra.Command{
	Use:   "list-dns-records",
	Short: "List DNS records of a zone",
	Long:  "List DNS records of a zone in a table.",
	Run: func(cmd *cobra.Command, args []string) {
		runListRecords()
	},
}

func init() {
	rootCmd.AddCommand(listRecordsCmd)

	listRecordsCmd.Flags().StringVar(&recordsZoneName, "zone-name", "", "Zone name in Cloudflare")
	listRecordsCmd.Flags().IntVar(&recordsPageSize, "page-size", 0,
		"Number of records per page in the paginated request")
	listRecordsCmd.MarkFlagRequired("zone-name")
}

func runListRecords() {
	client, err := newGateway()
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	zoneID, err := client.ZoneID(ctx, recordsZoneName)
	if err != nil {
		fail(err)
	}

	pageSize := recordsPageSize
	if pageSize <= 0 {
		pageSize = cfg.API.RecordPageSize
	}

	records, err := client.ListRecords(ctx, zoneID, pageSize)
	if err != nil {
		fail(err)
	}

	fmt.Println(renderRecordsTable(records))
}
