package protocol

// Line-oriented text protocol. Every message is one UTF-8 line ended
// by '\n'; unknown or malformed lines are discarded by the receiver.

const (
	MsgHello   = "HELLO:"   // client claims a slot: HELLO:1
	MsgInput   = "INPUT:"   // client directional command: INPUT:UP
	MsgWelcome = "WELCOME " // server acknowledges a claim: WELCOME 1
	MsgState   = "STATE:"   // server snapshot broadcast
)

const (
	InputUp   = "UP"
	InputDown = "DOWN"
	InputIdle = "IDLE"
)

const (
	TickRate        = 60 // simulation ticks and snapshot broadcasts per second
	ClientFrameRate = 60 // client frame pacing; at most one input line per frame
)
