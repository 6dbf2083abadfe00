package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/lite-lake/cfman/internal/domain/entity"
)

var (
	createZoneName string
	createHostname string
	createType     string
	createValue    string
)

var createCmd = &cobra.Command{
	Use:   "create-dns-record",
	Short: "Create a DNS record in a zone",
	Long:  "Create a host in a specific DNS zone.",
	Run: func(cmd *cobra.Command, args []string) {
		runCreate()
	},
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVar(&createZoneName, "zone-name", "", "Zone name in Cloudflare")
	createCmd.Flags().StringVar(&createHostname, "hostname", "", "Full hostname (e.g., api.example.com)")
	createCmd.Flags().StringVar(&createType, "type", "", "Record type (A, AAAA, CNAME, TXT, MX, NS, SRV, PTR, CAA)")
	createCmd.Flags().StringVar(&createValue, "value", "", "IP address or target of the DNS record")
	createCmd.MarkFlagRequired("zone-name")
	createCmd.MarkFlagRequired("hostname")
	createCmd.MarkFlagRequired("type")
	createCmd.MarkFlagRequired("value")
}

func runCreate() {
	recordType, err := entity.NormalizeRecordType(createType)
	if err != nil {
		fail(err)
	}

	client, err := newGateway()
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	zoneID, err := client.ZoneID(ctx, createZoneName)
	if err != nil {
		fail(err)
	}

	env, err := client.CreateRecord(ctx, zoneID, entity.Record{
		Type:    recordType,
		Name:    createHostname,
		Content: createValue,
	})
	if err != nil {
		fail(err)
	}

	echoJSON(env)
}
