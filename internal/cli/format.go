package cli

import "strconv"

func formatFloat(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}
