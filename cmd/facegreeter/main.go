// Package main provides the CLI entrypoint for facegreeter.
package main

func main() {
	Execute()
}
