package utils

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

// CheckFileExists returns true if the file exists
func CheckFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// CheckDirExists returns an error unless path is an existing directory
func CheckDirExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}

// ValidateListenAddr checks a host:port listen address. The host may be empty.
func ValidateListenAddr(addr string) error {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid listen address %q: bad port %q", addr, port)
	}
	return nil
}
