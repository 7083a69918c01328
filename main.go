package main

import "storagescan-uploader/cmd"

func main() {
	cmd.Execute()
}
