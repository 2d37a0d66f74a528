package templates

import (
	"strconv"
	"strings"
)

// numbered joins prefix1 .. prefixN with ", ".
func numbered(prefix string, count int) string {
	var sb strings.Builder
	for i := 1; i <= count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams renders the generic parameter list "T1, T2, .. TN comparable".
func typeParams(count int) string {
	return numbered("T", count) + " comparable"
}

// typeArgs renders the instantiation list "T1, T2, .. TN".
func typeArgs(count int) string {
	return numbered("T", count)
}
