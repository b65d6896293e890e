package dfaconfig

import "errors"

// ErrInvalidConfig is returned for records that cannot describe an automaton.
var ErrInvalidConfig = errors.New("dfaconfig: invalid config")
