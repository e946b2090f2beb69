//go:build tools

// This file pins the gogio packaging tool used to build giocalc for
// Android, iOS and the browser:
//
//	go run gioui.org/cmd/gogio -target android ./giocalc
package tools

import _ "gioui.org/cmd/gogio"
