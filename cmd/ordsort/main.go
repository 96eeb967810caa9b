// Command ordsort sorts text lines with orderings composed from named sort keys.
// Empty lines are treated as missing values.
package main

import "os"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
