package budget

// Operation identifies what the caller is about to do with the input text.
type Operation int

// Conversation operations subject to budget validation.
const (
	// OpSend sends a new user message.
	OpSend Operation = iota

	// OpEdit replaces the text of an existing message.
	OpEdit

	// OpReload regenerates the response to an existing message.
	OpReload

	// OpAttachFile adds file content to the conversation.
	OpAttachFile

	// OpSystemInstruction replaces the system instruction.
	OpSystemInstruction
)

// String returns the operation name.
func (o Operation) String() string {
	switch o {
	case OpSend:
		return "send"
	case OpEdit:
		return "edit"
	case OpReload:
		return "reload"
	case OpAttachFile:
		return "attach-file"
	case OpSystemInstruction:
		return "system-instruction"
	default:
		return "unknown"
	}
}
