/*package error contains simple funcitons for reporting fieldio errors.
*/
package error

import (
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
)

// exit is swapped out by tests.
var exit = os.Exit

// External reports an error and kills the program. It should be used when an
// error is something a user could reasonbly be expected to fix through
// changes in configuration/data/environement. It has the same signature as
// the standard fmt.*printf() functions.
func External(format string, a ...interface{}) {
	log.Errorf("fieldio exited early with the following error:\n" + format,
		a...)
	exit(1)
}

// Internal reports an error along with a stack trace and kills the program.
// It should be used when the error requires a code dive to fix. It has the
// same signature as the standard fmt.*printf() functions.
func Internal(format string, a ...interface{}) {
	log.WithField("stack", string(debug.Stack())).Errorf(
		"fieldio exited early with the following internal error:\n" + format,
		a...)
	exit(1)
}
