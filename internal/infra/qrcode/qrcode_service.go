package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"kala/config"
	"kala/internal/domain/service"
	"kala/internal/util"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service from the qrcode and directory config sections.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := 256, "M"
	if cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	var baseURL string
	if cfg.Directory != nil {
		baseURL = cfg.Directory.PublicBaseURL
	}

	return newQRCodeService(size, level, baseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// ProfileURL is the public page address encoded in a member's QR code.
func (s *qrcodeService) ProfileURL(username string) string {
	return s.baseURL + "/member/" + url.PathEscape(util.Slugify(username))
}

// GenerateProfileQR renders the member's profile URL as a PNG.
func (s *qrcodeService) GenerateProfileQR(username string) ([]byte, error) {
	if util.Slugify(username) == "" {
		return nil, fmt.Errorf("username %q has no usable characters", username)
	}

	qrCode, err := qrcode.New(s.ProfileURL(username), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
