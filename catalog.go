package exifer

// Category groups fields that are wiped together
type Category uint8

const (
	CategoryDate Category = iota
	CategoryDevice
	CategoryMisc
	CategoryComment
	CategoryUniqueID
	CategoryLocation // reserved - no location fields are resolved
)

func (c Category) String() string {
	switch c {
	case CategoryDate:
		return "date"
	case CategoryDevice:
		return "device"
	case CategoryMisc:
		return "misc"
	case CategoryComment:
		return "comment"
	case CategoryUniqueID:
		return "unique-id"
	case CategoryLocation:
		return "location"
	}
	return "unknown"
}

// Validator checks the first byte of a payload before it is reported or wiped
type Validator func(first byte) bool

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func isPrintable(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

// FieldDescriptor describes one known metadata field
type FieldDescriptor struct {
	Label    string
	Tag      uint16
	Category Category
	Valid    Validator
}

// Identifier returns the byte pattern the field's directory entry starts with, in the given order
func (d FieldDescriptor) Identifier(order ByteOrder) [2]byte {
	hi, lo := byte(d.Tag>>8), byte(d.Tag)
	if order == LittleEndian {
		return [2]byte{lo, hi}
	}
	return [2]byte{hi, lo}
}

// EXIF / TIFF tag numbers
const (
	TagImageDescription    uint16 = 0x010E
	TagMake                uint16 = 0x010F
	TagModel               uint16 = 0x0110
	TagSoftware            uint16 = 0x0131
	TagDateTime            uint16 = 0x0132
	TagArtist              uint16 = 0x013B
	TagHostComputer        uint16 = 0x013C
	TagCopyright           uint16 = 0x8298
	TagDateTimeOriginal    uint16 = 0x9003
	TagDateTimeDigitized   uint16 = 0x9004
	TagOffsetTime          uint16 = 0x9010
	TagOffsetTimeOriginal  uint16 = 0x9011
	TagOffsetTimeDigitized uint16 = 0x9012
	TagMakerNote           uint16 = 0x927C
	TagUserComment         uint16 = 0x9286
	TagImageUniqueID       uint16 = 0xA420
	TagCameraOwnerName     uint16 = 0xA430
	TagBodySerialNumber    uint16 = 0xA431
	TagLensMake            uint16 = 0xA433
	TagLensModel           uint16 = 0xA434
	TagLensSerialNumber    uint16 = 0xA435
)

var dateFields = []FieldDescriptor{
	{Label: "Modified", Tag: TagDateTime, Category: CategoryDate, Valid: isDigit},
	{Label: "Original", Tag: TagDateTimeOriginal, Category: CategoryDate, Valid: isDigit},
	{Label: "Digitised", Tag: TagDateTimeDigitized, Category: CategoryDate, Valid: isDigit},
	{Label: "Offset Time", Tag: TagOffsetTime, Category: CategoryDate, Valid: isSign},
	{Label: "Original Offset", Tag: TagOffsetTimeOriginal, Category: CategoryDate, Valid: isSign},
	{Label: "Digitised Offset", Tag: TagOffsetTimeDigitized, Category: CategoryDate, Valid: isSign},
}

var deviceFields = []FieldDescriptor{
	{Label: "Manufacturer", Tag: TagMake, Category: CategoryDevice, Valid: isAlpha},
	{Label: "Model", Tag: TagModel, Category: CategoryDevice, Valid: isAlpha},
	{Label: "Software", Tag: TagSoftware, Category: CategoryDevice, Valid: isAlnum},
	{Label: "Host Computer", Tag: TagHostComputer, Category: CategoryDevice, Valid: isAlnum},
	{Label: "Makernote", Tag: TagMakerNote, Category: CategoryDevice, Valid: isAlnum},
	{Label: "Owner", Tag: TagCameraOwnerName, Category: CategoryDevice, Valid: isPrintable},
	{Label: "Serial Number", Tag: TagBodySerialNumber, Category: CategoryDevice, Valid: isAlnum},
	{Label: "Lens Make", Tag: TagLensMake, Category: CategoryDevice, Valid: isAlnum},
	{Label: "Lens Model", Tag: TagLensModel, Category: CategoryDevice, Valid: isAlnum},
	{Label: "Lens Serial", Tag: TagLensSerialNumber, Category: CategoryDevice, Valid: isAlnum},
}

var miscFields = []FieldDescriptor{
	{Label: "Image Description", Tag: TagImageDescription, Category: CategoryMisc, Valid: isPrintable},
	{Label: "Artist", Tag: TagArtist, Category: CategoryMisc, Valid: isPrintable},
	{Label: "Copyright", Tag: TagCopyright, Category: CategoryMisc, Valid: isPrintable},
	{Label: "Comment", Tag: TagUserComment, Category: CategoryComment, Valid: isPrintable},
	{Label: "Unique ID", Tag: TagImageUniqueID, Category: CategoryUniqueID, Valid: isPrintable},
}

// DateFields returns the fields examined by QueryDates, in query order
func DateFields() []FieldDescriptor {
	return append([]FieldDescriptor(nil), dateFields...)
}

// DeviceFields returns the fields examined by QueryDevice, in query order
func DeviceFields() []FieldDescriptor {
	return append([]FieldDescriptor(nil), deviceFields...)
}

// MiscFields returns the fields examined by QueryMisc, in query order
func MiscFields() []FieldDescriptor {
	return append([]FieldDescriptor(nil), miscFields...)
}
