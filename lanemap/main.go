// Command lanemap assigns and checks the ids of map entities.
package main

import "github.com/sarchlab/lanemap/lanemap/cmd"

func main() {
	cmd.Execute()
}
