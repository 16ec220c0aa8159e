//go:build !(js && wasm)

package main

import (
	"github.com/marisvali/neonhacker/world"
	"os"
	"os/user"
)

func getUsername() string {
	u, err := user.Current()
	if err != nil {
		return "unknown"
	}
	return u.Username
}

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	world.Check(err)
}
