package gatt

// ATT opcodes. Only the subset this core dispatches or emits is named;
// unrecognized opcodes (including signed-write, prepared/executed-write,
// and read-multiple) are answered with ErrRequestNotSupported.
const (
	opError                   = 0x01
	opExchangeMTUReq          = 0x02
	opExchangeMTUResponse     = 0x03
	opFindInfoReq             = 0x04
	opFindInfoResponse        = 0x05
	opFindByTypeValueReq      = 0x06
	opFindByTypeValueResponse = 0x07
	opReadByTypeReq           = 0x08
	opReadByTypeResponse      = 0x09
	opReadReq                 = 0x0A
	opReadResponse            = 0x0B
	opReadBlobReq             = 0x0C
	opReadBlobResponse        = 0x0D
	opReadByGroupTypeReq      = 0x10
	opReadByGroupTypeResponse = 0x11
	opWriteReq                = 0x12
	opWriteResponse           = 0x13
	opHandleValueNotification = 0x1B
)

// GATT-defined UUIDs used by the database and by discovery handlers.
const (
	uuidPrimaryService             = 0x2800
	uuidCharacteristicDeclaration   = 0x2803
	uuidClientCharacteristicConfig = 0x2902
)
