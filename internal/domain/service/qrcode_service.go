package service

// QRCodeService renders QR codes.
type QRCodeService interface {
	// GenerateProfileQR returns a PNG encoding the public profile URL of a member.
	GenerateProfileQR(username string) ([]byte, error)
}
