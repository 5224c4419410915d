package state

import "fmt"

func skillLabel(name string, level int) string {
	return fmt.Sprintf("%s %d", name, level)
}

func formatTime(seconds float64) string {
	s := int(seconds)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}
