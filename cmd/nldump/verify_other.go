//go:build !linux

package main

import "errors"

func verifyTable() error {
	return errors.New("-verify compares against golang.org/x/sys/unix and requires Linux")
}
