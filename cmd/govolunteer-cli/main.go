package main

import "govolunteer-backend/cmd/govolunteer-cli/cmd"

func main() {
	cmd.Execute()
}
