// Copyright Microsoft Corporation.
// Licensed under the MIT License.

// Inspection tool for super-image partition layout files.

package main

import (
	"github.com/dynpart/superimg/tools/superctl/cmd"
)

func main() {
	cmd.Execute()
}
