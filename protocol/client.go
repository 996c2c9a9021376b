package protocol

import (
	"bytes"
	"fmt"

	"github.com/semiguerra/lwip-pong/game"
)

// Lines sent by the client.

// EncodeHello frames a slot claim for slot 1 or 2.
func EncodeHello(slot int) []byte {
	return fmt.Appendf(nil, "%s%d\n", MsgHello, slot)
}

// ParseHello accepts exactly HELLO:1 or HELLO:2. Anything else is not
// a claim.
func ParseHello(line []byte) (int, bool) {
	rest, ok := bytes.CutPrefix(line, []byte(MsgHello))
	if !ok {
		return 0, false
	}
	switch string(rest) {
	case "1":
		return 1, true
	case "2":
		return 2, true
	}
	return 0, false
}

// EncodeInput frames a directional command. CommandNone has no wire
// form and encodes to nil.
func EncodeInput(cmd game.Command) []byte {
	var dir string
	switch cmd {
	case game.CommandUp:
		dir = InputUp
	case game.CommandDown:
		dir = InputDown
	case game.CommandIdle:
		dir = InputIdle
	default:
		return nil
	}
	return fmt.Appendf(nil, "%s%s\n", MsgInput, dir)
}

// ParseInput decodes a directional command line. Only the three known
// directions count; under-length or unrecognized payloads decode to
// CommandNone so the caller's register stays untouched.
func ParseInput(line []byte) (game.Command, bool) {
	rest, ok := bytes.CutPrefix(line, []byte(MsgInput))
	if !ok {
		return game.CommandNone, false
	}
	switch string(rest) {
	case InputUp:
		return game.CommandUp, true
	case InputDown:
		return game.CommandDown, true
	case InputIdle:
		return game.CommandIdle, true
	}
	return game.CommandNone, false
}
