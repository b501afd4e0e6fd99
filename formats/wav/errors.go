package wav

import "errors"

var (
	ErrEmptyInput        = errors.New("input is empty")
	ErrShortHeader       = errors.New("input is shorter than the header")
	ErrInvalidHeaderSize = errors.New("header size must not be negative")
	ErrNotWavFile        = errors.New("not a WAV file")
	ErrNoPCMData         = errors.New("no PCM data chunk")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrWriterClosed      = errors.New("writer already closed")
)
