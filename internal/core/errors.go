package core

import "errors"

// ErrQRNotFound is reported by QRDecoder implementations when the image
// decodes cleanly but contains no QR code.
var ErrQRNotFound = errors.New("no QR code found in image")
