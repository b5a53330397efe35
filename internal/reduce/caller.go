package reduce

// Copyright (c) 2025 Colin McRae

import "fmt"

// callerf extends a caller chain with the name of the function being
// entered, matching the teacher's caller-string threading convention: every
// exported entry point appends its own name so an eventual error message
// names the full call path, not just the immediate site.
func callerf(caller, funcName string) string {
	return fmt.Sprintf("%s-%s", caller, funcName)
}
