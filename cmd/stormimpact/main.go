// Command stormimpact ranks the most harmful weather event types in the NOAA
// Storm Events dataset by health and economic impact.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
