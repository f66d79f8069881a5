// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/parasautohuolto/directory-service/cmd"

func main() {
	cmd.Execute()
}
