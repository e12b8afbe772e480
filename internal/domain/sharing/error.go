package sharing

import "errors"

// ErrCorruptLink covers every decode-stage failure: bad alphabet, truncated
// or tampered compressed stream, malformed JSON. The recipient sees a single
// "invalid or corrupted link" message and must obtain a fresh link.
var ErrCorruptLink = errors.New("share link is invalid or corrupted")
