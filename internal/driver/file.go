package driver

import (
	"os"

	"github.com/pkg/errors"
)

// RunFile loads a script and runs it in one pass. An I/O failure is
// returned to the caller; language errors are reported through the
// pipeline like any other run and do not propagate.
func (d *Driver) RunFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading script %s", path)
	}
	d.Run(string(src))
	return nil
}
