package broadcast

import "errors"

var ErrBroadcasterClosed = errors.New("broadcast: broadcaster is closed")
