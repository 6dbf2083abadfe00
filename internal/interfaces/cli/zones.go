package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	zonesPageSize int
	zonesNameFlag string
)

var listZonesCmd = &cobra.Command{
	Use:   "list-dns-zones",
	Short: "List DNS zones",
	Long:  "List DNS zones (all or filtered by name) and show their names and IDs.",
	Run: func(cmd *cobra.Command, args []string) {
		runListZones()
	},
}

func init() {
	rootCmd.AddCommand(listZonesCmd)

	listZonesCmd.Flags().IntVar(&zonesPageSize, "page-size", 0,
		"Number of zones per page in the paginated request")
	listZonesCmd.Flags().StringVar(&zonesNameFlag, "zone-name", "",
		"Exact zone name to filter (e.g., example.com)")
}

func runListZones() {
	client, err := newGateway()
	if err != nil {
		fail(err)
	}

	pageSize := zonesPageSize
	if pageSize <= 0 {
		pageSize = cfg.API.ZonePageSize
	}

	zones, err := client.ListZones(context.Background(), zonesNameFlag, pageSize)
	if err != nil {
		fail(err)
	}

	if len(zones) == 0 && zonesNameFlag != "" {
		fmt.Printf("No zones found for the name: %s\n", zonesNameFlag)
		return
	}
	fmt.Println(renderZonesTable(zones))
}
