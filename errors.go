package gatt

import "fmt"

// AttError is an ATT error code, returned as the fifth octet of an Error
// Response.
type AttError uint8

// ATT error codes this core raises.
const (
	ErrInvalidHandle              AttError = 0x01
	ErrReadNotPermitted           AttError = 0x02
	ErrWriteNotPermitted          AttError = 0x03
	ErrInvalidPDU                 AttError = 0x04
	ErrRequestNotSupported        AttError = 0x06
	ErrInvalidOffset              AttError = 0x07
	ErrAttributeNotFound          AttError = 0x0A
	ErrInvalidAttributeValueLength AttError = 0x0D
	ErrUnsupportedGroupType       AttError = 0x10
)

func (e AttError) Error() string {
	switch e {
	case ErrInvalidHandle:
		return "invalid handle"
	case ErrReadNotPermitted:
		return "read not permitted"
	case ErrWriteNotPermitted:
		return "write not permitted"
	case ErrInvalidPDU:
		return "invalid PDU"
	case ErrRequestNotSupported:
		return "request not supported"
	case ErrInvalidOffset:
		return "invalid offset"
	case ErrAttributeNotFound:
		return "attribute not found"
	case ErrInvalidAttributeValueLength:
		return "invalid attribute value length"
	case ErrUnsupportedGroupType:
		return "unsupported group type"
	default:
		return fmt.Sprintf("att error 0x%02x", uint8(e))
	}
}
