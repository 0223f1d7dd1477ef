package domain

// DecodeMode selects whether a decode returns only the number of messages
// or the messages themselves.
type DecodeMode string

const (
	DecodeModeCount DecodeMode = "count"
	DecodeModeList  DecodeMode = "list"
)

func (m DecodeMode) String() string { return string(m) }

func (m DecodeMode) IsValid() bool {
	switch m {
	case DecodeModeCount, DecodeModeList:
		return true
	}
	return false
}
