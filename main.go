// Copyright © 2026 Geoff Holden <geoff@geoffholden.com>

package main

import "github.com/geoffholden/gopm/cmd"

func main() {
	cmd.Execute()
}
