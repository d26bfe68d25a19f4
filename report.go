package artstub

import "fmt"

// CreatedLine formats the confirmation line printed after a successful save.
func CreatedLine(path string) string {
	return fmt.Sprintf("Created optimized placeholder: %s", path)
}

// SizeLine formats the size report line. size is in bytes and is reported in
// kilobytes to one decimal place. was is printed verbatim.
func SizeLine(size int64, was string) string {
	return fmt.Sprintf("Size: %.1fKB (was %s)", float64(size)/1024, was)
}
