package main

import "github.com/ClusterFights/jigsaw-challenge/cmd"

func main() {
	cmd.Execute()
}
