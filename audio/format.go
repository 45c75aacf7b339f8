package audio

// Format describes PCM sample layout. Samples are signed little-endian
// integers, interleaved by channel.
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// DefaultFormat is the capture format speech APIs generally expect:
// 16 kHz, mono, 16-bit.
func DefaultFormat() Format {
	return Format{
		SampleRate: 16000,
		Channels:   1,
		BitDepth:   16,
	}
}

func (f Format) BytesPerFrame() int {
	return f.Channels * f.BitDepth / 8
}
