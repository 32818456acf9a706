package interpreter

import "helang/interpreter-go/pkg/runtime"

// stringifyValue renders a value the way print shows it: scalars in decimal,
// arrays as their elements joined by " | ".
func stringifyValue(val runtime.Value) string {
	if val == nil {
		return ""
	}
	return val.String()
}
