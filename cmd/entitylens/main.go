// Command entitylens runs the proxy server and performs entity lookups from
// the terminal.
package main

func main() {
	Execute()
}
