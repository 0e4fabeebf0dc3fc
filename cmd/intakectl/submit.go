package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byword/intake-api/internal/model"
)

var submitFields []string

var submitCmd = &cobra.Command{
	Use:   "submit {contact|intake|catering}",
	Short: "Submit a form and print the acknowledgment",
	Long: `Submit a form built from --field key=value pairs.

  intakectl submit contact -f name=Alice -f email=alice@example.com -f service_type=legal
  intakectl submit intake -f matter="lease dispute"`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{model.KindContact, model.KindIntake, model.KindCatering},
	RunE:      runSubmit,
}

func init() {
	submitCmd.Flags().StringArrayVarP(&submitFields, "field", "f", nil, "Form field as key=value (repeatable)")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	fields, err := parseFields(submitFields)
	if err != nil {
		return err
	}

	c := newClient()
	ctx := cmd.Context()
	var ack any
	switch args[0] {
	case model.KindContact:
		var sub model.ContactSubmission
		if err := remarshal(fields, &sub); err != nil {
			return err
		}
		ack, err = c.SubmitContact(ctx, &sub)
	case model.KindIntake:
		ack, err = c.SubmitIntake(ctx, fields)
	case model.KindCatering:
		ack, err = c.SubmitCatering(ctx, fields)
	default:
		return fmt.Errorf("unknown form %q: want contact, intake or catering", args[0])
	}
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), ack)
}

func parseFields(pairs []string) (model.Submission, error) {
	fields := model.Submission{}
	for _, pair := range pairs {
		k, v, ok := strings.Cut(pair, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid field %q: want key=value", pair)
		}
		fields[k] = v
	}
	return fields, nil
}

func remarshal(in any, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
