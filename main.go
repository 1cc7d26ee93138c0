package main

import "github.com/nris-hpc/jobcost/cmd"

func main() {
	cmd.Execute()
}
