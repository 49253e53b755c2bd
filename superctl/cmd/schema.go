// Copyright Microsoft Corporation.
// Licensed under the MIT License.

package cmd

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/dynpart/superimg/tools/imagegen/configuration"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for partition layout files",
	RunE: func(c *cobra.Command, args []string) error {
		return printSchema()
	},
	SilenceUsage: true,
}

func printSchema() error {
	var reflector jsonschema.Reflector
	reflector.RequiredFromJSONSchemaTags = true
	reflector.AdditionalFields = additionalFieldsHandler
	schema := reflector.Reflect(&configuration.PartitionConfig{})
	content, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}

	fmt.Printf("%s\n", content)
	return nil
}

// Add $schema
func additionalFieldsHandler(ty reflect.Type) []reflect.StructField {
	var fields []reflect.StructField
	if ty.Name() == "PartitionConfig" {
		fields = append(fields, reflect.StructField{
			Name:    "Schema",
			PkgPath: "",
			Tag:     `json:"$schema"`,
			Type:    reflect.TypeOf(""),
		})
	}
	return fields
}

func init() {
	RootCmd.AddCommand(schemaCmd)
}
