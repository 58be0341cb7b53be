// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/palinimi/palinimi/cmd/palinimi"

func main() {
	cmd.Execute()
}
