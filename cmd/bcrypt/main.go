// Command bcrypt hashes, verifies and inspects bcrypt password hashes.
//
//	bcrypt hash [--cost N] [--version 2b] [--stdin] [password]
//	bcrypt verify HASH [password]
//	bcrypt info HASH
//
// verify exits 0 on a match, 1 on a mismatch and 2 on any other error.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], newTerminalApp()))
}
