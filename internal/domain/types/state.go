package types

// ConverterSelection is the converter's category and unit pair.
type ConverterSelection struct {
	Category ConversionCategory
	From     string
	To       string
}

// SessionState is the whole interpreter state for one session.
type SessionState struct {
	Mode            Mode
	CurrentInput    string
	PreviousInput   string
	PendingOperator Operator

	Converter ConverterSelection
	// Result is the last successful conversion; HasResult is false until one exists.
	Result    float64
	HasResult bool
}

// HasPending reports whether a binary operation is waiting for its right operand.
func (s SessionState) HasPending() bool {
	return s.PreviousInput != "" && s.PendingOperator != OpNone
}
