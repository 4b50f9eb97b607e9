package lib

import (
	"fmt"
	"io"
)

const helpText = `fieldio reads and rewrites raw binary scalar-field snapshots.

Usage:
    $ fieldio <mode> <config file> [--<Name> <Value>]...

Modes:
    help     Print this message.
    check    Check that every field can be read at every requested timestep.
    stats    Print the min, max, mean, and standard deviation of each
             timestep.
    convert  Rewrite each field under Output + <name>, with TimestampLen
             digits and, optionally, a new Precision.
    plane    Print the 2D cut at Index along Axis (0, 1, or 2).

Example config file:

    [mesh]
    Nx = 64
    Ny = 65
    Nz = 32

    [run]
    # all, -1, or a sequence like 7, 0, 5, 10 or 0..100 - 63.
    Times = all
    TimestampLen = 3
    Output = converted/
    Precision = single
    # crash or warn.
    Strictness = crash
    LogLevel = info

    [field.ux]
    description = streamwise velocity
    filename = data/ux
    direction = 0
    # single or double (the default).
    precision = double
    # little, big, or native (the default).
    byteorder = native
    # Number of timesteps probed when Times = all.
    maxtime = 1000

Any [mesh] or [run] variable can be overridden on the command line, e.g.
"--Times 0,5,10". "--Fields ux,uy" restricts a run to the named fields.
`

// PrintHelp writes usage information to wr.
func PrintHelp(wr io.Writer) {
	fmt.Fprint(wr, helpText)
}
