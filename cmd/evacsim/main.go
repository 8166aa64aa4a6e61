// Command evacsim runs the floor-field pedestrian evacuation simulator:
// a single simulation set (run), an auxiliary-file driven exit sweep
// (sweep), or an environment-file connectivity lint (validate).
package main

import "os"

func main() {
	os.Exit(Execute())
}
