package logging

// MaxLogFieldLength caps string fields logged from API payloads.
const MaxLogFieldLength = 256

// Truncate caps s at MaxLogFieldLength, appending "..." when anything
// was cut.
func Truncate(s string) string {
	return TruncateN(s, MaxLogFieldLength)
}

// TruncateN caps s at n characters, appending "..." when anything was cut.
func TruncateN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// TruncateSlice caps items at maxItems entries, folding the tail into a
// "... and N more" marker.
func TruncateSlice(items []string, maxItems int) []string {
	if len(items) <= maxItems {
		return items
	}

	truncated := make([]string, 0, maxItems+1)
	truncated = append(truncated, items[:maxItems]...)
	truncated = append(truncated, "... and "+itoa(len(items)-maxItems)+" more")
	return truncated
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
