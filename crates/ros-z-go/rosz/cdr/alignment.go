package cdr

// EncapsulationHeaderSize is the size of the CDR encapsulation header.
const EncapsulationHeaderSize = 4

// Encapsulation identifiers carried in the second header byte.
const (
	encapsulationCDRBE byte = 0x00
	encapsulationCDRLE byte = 0x01
)

// Alignment returns the number of padding bytes needed so that a value of
// dataSize bytes starting at currentAlignment is naturally aligned.
//
// dataSize must be a power of 2.
func Alignment(currentAlignment, dataSize int) int {
	return (dataSize - currentAlignment%dataSize) & (dataSize - 1)
}
