package registry

// Security is the access-rights mask requested on an open or create. It
// is passed through to the native backend unmodified; this layer does not
// interpret its bits.
type Security uint32

// Fine-grained key access rights, combinable by OR.
const (
	QueryValue       Security = 0x0001
	SetValueRight    Security = 0x0002
	CreateSubKey     Security = 0x0004
	EnumerateSubKeys Security = 0x0008
	Notify           Security = 0x0010
	CreateLink       Security = 0x0020

	// WOW64 redirection overrides for 32/64-bit registry views.
	WOW64_64Key Security = 0x0100
	WOW64_32Key Security = 0x0200
)

// Composite rights matching the standard KEY_READ / KEY_WRITE /
// KEY_ALL_ACCESS masks.
const (
	Read      Security = 0x20019
	Write     Security = 0x20006
	Execute   Security = Read
	AllAccess Security = 0xF003F
)
