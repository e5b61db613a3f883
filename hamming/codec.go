package hamming

// Encoder encodes 4-bit data blocks given as '0'/'1' strings.
type Encoder interface {
	// Encode returns the 8-character codeword for a 4-character data block.
	//
	// Returns errs.ErrInvalidInputShape if data is not exactly 4 characters
	// of '0' or '1'. No partial result is returned on error.
	Encode(data string) (string, error)
}

// Decoder decodes 8-bit codewords given as '0'/'1' strings.
type Decoder interface {
	// Decode returns the 4-character data block carried by encoded, correcting
	// at most one flipped bit.
	//
	// Returns errs.ErrInvalidInputShape if encoded is not exactly 8 characters
	// of '0' or '1'. A corrected flip is not an error.
	Decode(encoded string) (string, error)
}

// Codec combines both directions.
type Codec interface {
	Encoder
	Decoder
}

// StringCodec is the validating Codec over the typed Encode and Decode.
// The zero value is ready to use and safe for concurrent use.
type StringCodec struct{}

var _ Codec = (*StringCodec)(nil)

// NewStringCodec creates a new string codec.
func NewStringCodec() StringCodec {
	return StringCodec{}
}

// Encode parses data, encodes it and formats the codeword.
func (StringCodec) Encode(data string) (string, error) {
	d, err := ParseDataBlock(data)
	if err != nil {
		return "", err
	}

	return Encode(d).String(), nil
}

// Decode parses encoded, decodes it and formats the data block.
func (StringCodec) Decode(encoded string) (string, error) {
	cw, err := ParseCodeword(encoded)
	if err != nil {
		return "", err
	}

	return Decode(cw).String(), nil
}
