package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	removeZoneName    string
	removeRecordName  string
	removeAutoApprove bool
)

var removeCmd = &cobra.Command{
	Use:   "remove-dns-record",
	Short: "Remove a DNS record from a zone",
	Long:  "Remove a DNS record from a specific zone after user confirmation.",
	Run: func(cmd *cobra.Command, args []string) {
		runRemove()
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().StringVar(&removeZoneName, "zone-name", "", "Zone name in Cloudflare")
	removeCmd.Flags().StringVar(&removeRecordName, "record-name", "",
		"Full record name to remove (e.g., passbolt.example.com)")
	removeCmd.Flags().BoolVar(&removeAutoApprove, "auto-approve", false, "Skip confirmation prompt")
	removeCmd.MarkFlagRequired("zone-name")
	removeCmd.MarkFlagRequired("record-name")
}

func runRemove() {
	client, err := newGateway()
	if err != nil {
		fail(err)
	}

	ctx := context.Background()
	zoneID, err := client.ZoneID(ctx, removeZoneName)
	if err != nil {
		fail(err)
	}

	// Destructive operations never act on a bare name: the record is resolved
	// to exactly one ID first, and ambiguous matches abort before this point.
	record, err := client.FindRecordByName(ctx, zoneID, removeRecordName)
	if err != nil {
		fail(err)
	}

	if !removeAutoApprove {
		prompt := fmt.Sprintf("Remove record '%s' (type %s) from zone '%s'?",
			removeRecordName, record.Type, removeZoneName)
		if !Confirm(prompt, false) {
			echoJSON(map[string]string{"status": "cancelled"})
			return
		}
	}

	env, err := client.DeleteRecord(ctx, zoneID, record.ID)
	if err != nil {
		fail(err)
	}

	echoJSON(env)
}
