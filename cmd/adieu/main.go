package main

import "github.com/ch00kz/adieu-backend/internal/cli"

func main() {
	cli.Execute()
}
