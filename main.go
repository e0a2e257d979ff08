// SPDX-License-Identifier: MPL-2.0

package main

import cmd "surety/cmd/surety"

func main() {
	cmd.Execute()
}
