// Package qr renders equipment codes as scannable images and printable
// labels. The payload is always the equipo's codigo_qr string, so scanning a
// label and calling GET /v1/equipos/qr/:codigo round-trips to the same row.
package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const pngSize = 256 // pixels

// PNG encodes datos as a QR code PNG.
func PNG(datos string) ([]byte, error) {
	png, err := qrcode.Encode(datos, qrcode.Medium, pngSize)
	if err != nil {
		return nil, fmt.Errorf("qr encode: %w", err)
	}
	return png, nil
}

// Base64PNG encodes datos as a QR code PNG and returns it base64-encoded for
// embedding in JSON responses.
func Base64PNG(datos string) (string, error) {
	png, err := PNG(datos)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// EtiquetaPDF builds a printable A6 label for an equipo: name, QR image and
// the code in clear text underneath for manual entry when scanning fails.
func EtiquetaPDF(nombre, codigo string) ([]byte, error) {
	png, err := PNG(codigo)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A6", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, nombre, "", 1, "C", false, 0, "")

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(png))
	// A6 portrait is 105mm wide; center a 70mm square QR.
	pdf.ImageOptions("qr", (105-70)/2, 20, 70, 70, false, opts, 0, "")

	pdf.SetY(95)
	pdf.SetFont("Courier", "", 11)
	pdf.CellFormat(0, 8, codigo, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("etiqueta pdf: %w", err)
	}
	return buf.Bytes(), nil
}
