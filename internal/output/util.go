package output

import "strconv"

func intToString(i int) string { return strconv.Itoa(i) }

// floatToString keeps full precision for machine-readable exports.
func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func fixed(f float64, places int) string { return strconv.FormatFloat(f, 'f', places, 64) }
