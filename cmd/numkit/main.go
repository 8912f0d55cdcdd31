// Command numkit walks through the calculator, dataset and utils packages
// and prints what each of them computes.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
